package catalog

import "github.com/hkaraoglu/ir-scheduler/internal/model"

// DefaultProcedures is the department's procedure list. Display names stay
// in Turkish because that is what the clinic staff select from.
var DefaultProcedures = []model.SeedProcedure{
	{
		Name:               "Tiroid FNA Biyopsi",
		Category:           model.CategoryNonFluoroscopy,
		DefaultDurationMin: 20,
		Checklist: model.Checklist{
			"Antikoagülan durumu sorgulandı.",
			"Lokal anestezi onayı alındı.",
		},
	},
	{
		Name:               "Karaciğer Parankim Biyopsisi",
		Category:           model.CategoryNonFluoroscopy,
		DefaultDurationMin: 30,
		Checklist: model.Checklist{
			"Hasta en az 6 saat aç.",
			"Antikoagülan hekim planına göre yönetildi.",
			"Güncel pıhtılaşma paneli (INR, aPTT, Trombosit) mevcut.",
		},
	},
	{
		Name:               "Böbrek Parankim Biyopsisi",
		Category:           model.CategoryNonFluoroscopy,
		DefaultDurationMin: 30,
		Checklist: model.Checklist{
			"Hasta en az 6 saat aç.",
			"Antikoagülan hekim planına göre yönetildi.",
			"Güncel pıhtılaşma paneli ve Kreatinin mevcut.",
		},
	},
	{
		Name:               "Akciğer Kitle Biyopsisi",
		Category:           model.CategoryNonFluoroscopy,
		DefaultDurationMin: 40,
		Checklist: model.Checklist{
			"Hasta en az 6 saat aç.",
			"Antikoagülan hekim planına göre yönetildi.",
			"İşlem sonrası pnömotoraks riski hakkında bilgi verildi.",
		},
	},
	{
		Name:               "Apse/Kist Drenaj Kateteri Takılması",
		Category:           model.CategoryNonFluoroscopy,
		DefaultDurationMin: 30,
		Checklist: model.Checklist{
			"Hasta en az 6 saat aç.",
			"Antikoagülan hekim planına göre yönetildi.",
			"Güncel pıhtılaşma ve enfeksiyon belirteçleri mevcut.",
		},
	},
	{
		Name:               "Tanısal Serebral Anjiyografi (DSA)",
		Category:           model.CategoryFluoroscopy,
		DefaultDurationMin: 45,
		Checklist: model.Checklist{
			"Hasta en az 6 saat aç.",
			"Antikoagülan hekim planına göre yönetildi.",
			"Güncel Kreatinin değeri mevcut.",
		},
	},
	{
		Name:               "Akut İnme (Mekanik Trombektomi)",
		Category:           model.CategoryFluoroscopy,
		DefaultDurationMin: 90,
		Checklist: model.Checklist{
			"ACİL DURUM! Zaman kritiktir.",
			"Nöroloji ve Anestezi ekibi bilgilendirildi.",
			"Hasta onamı (mümkünse) alındı.",
		},
	},
	{
		Name:               "Anevrizma Koilleme / Embolizasyon",
		Category:           model.CategoryFluoroscopy,
		DefaultDurationMin: 120,
		Checklist: model.Checklist{
			"Hasta en az 8 saat aç.",
			"Genel anestezi onayı alındı.",
			"Antikoagülan hekim planına göre yönetildi.",
		},
	},
	{
		Name:               "Karotis Stentleme",
		Category:           model.CategoryFluoroscopy,
		DefaultDurationMin: 75,
		Checklist: model.Checklist{
			"Hasta en az 6 saat aç.",
			"Nörolojik muayene yapıldı.",
			"Antikoagülan/Antiplatelet planı yapıldı.",
		},
	},
	{
		Name:               "TACE / TARE (Onkolojik Embolizasyon)",
		Category:           model.CategoryFluoroscopy,
		DefaultDurationMin: 90,
		Checklist: model.Checklist{
			"Hasta en az 6 saat aç.",
			"Onkoloji onayı mevcut.",
			"Karaciğer fonksiyon testleri güncel.",
		},
	},
	{
		Name:               "Nefrostomi Kateteri Takılması",
		Category:           model.CategoryFluoroscopy,
		DefaultDurationMin: 30,
		Checklist: model.Checklist{
			"Hasta en az 4 saat aç.",
			"Antikoagülan hekim planına göre yönetildi.",
			"Güncel pıhtılaşma paneli ve Kreatinin mevcut.",
		},
	},
	{
		Name:               "Biliyer Drenaj (PTK)",
		Category:           model.CategoryFluoroscopy,
		DefaultDurationMin: 45,
		Checklist: model.Checklist{
			"Hasta en az 6 saat aç.",
			"Geniş spektrumlu antibiyotik başlandı.",
			"Güncel pıhtılaşma ve KFT mevcut.",
		},
	},
}
