package catalog

// Seed data for the fly screen product line. Ported from the published
// product sheets; prices are TRY per square meter, installation fees are
// flat TRY per unit.

func defaultMaterials() []Material {
	return []Material{
		{
			ID:            "standard-fiberglass",
			Name:          "Fiberglass Standard Mesh (18x16)",
			Family:        FamilyFiberglass,
			MeshDensity:   "18x16",
			Durability:    3,
			Visibility:    4,
			Airflow:       85,
			PetResistant:  false,
			DustResistant: false,
			PollenFilter:  false,
		},
		{
			ID:                 "petscreen-vinyl",
			Name:               "PetScreen (Pençe Dayanıklı)",
			Family:             FamilyVinylPolyester,
			MeshDensity:        "17x14",
			Durability:         5,
			Visibility:         3,
			Airflow:            75,
			StrengthMultiplier: 7,
			PetResistant:       true,
			DustResistant:      true,
		},
		{
			ID:               "poll-tex-allergy",
			Name:             "Poll-tex (Anti-Alerjik Polen Filtresi)",
			Family:           FamilyElectrostatic,
			MeshDensity:      "20x20",
			Durability:       4,
			Visibility:       3,
			Airflow:          65,
			DustResistant:    true,
			PollenFilter:     true,
			PollenFilterRate: 99,
		},
		{
			ID:            "tuffscreen-heavy",
			Name:          "TuffScreen (No-Sag Heavy Duty)",
			Family:        FamilyVinylPolyester,
			MeshDensity:   "18x14",
			Durability:    5,
			Visibility:    4,
			Airflow:       70,
			PetResistant:  true,
			DustResistant: true,
		},
		{
			ID:            "steel-mesh-security",
			Name:          "Paslanmaz Çelik Güvenlik Tülü",
			Family:        FamilySteel,
			MeshDensity:   "14x14",
			Durability:    5,
			Visibility:    3,
			Airflow:       80,
			PetResistant:  true,
			DustResistant: true,
			SecurityRated: true,
		},
		{
			ID:               "nano-clear-antidust",
			Name:             "Nano-Clear Anti-Dust",
			Family:           FamilyNanoPolyester,
			MeshDensity:      "18x18",
			Durability:       4,
			Visibility:       5,
			Airflow:          80,
			DustResistant:    true,
			PollenFilter:     true,
			PollenFilterRate: 85,
			SelfCleaning:     true,
		},
		{
			ID:            "premium-polyester",
			Name:          "Premium İthal Polyester",
			Family:        FamilyPolyester,
			MeshDensity:   "18x18",
			Durability:    4,
			Visibility:    5,
			Airflow:       80,
			DustResistant: true,
		},
		{
			ID:                 "steel-reinforced",
			Name:               "Çelik Takviyeli TuffScreen Pro",
			Family:             FamilySteel,
			MeshDensity:        "16x14",
			Durability:         5,
			Visibility:         3,
			Airflow:            72,
			StrengthMultiplier: 7,
			PetResistant:       true,
			DustResistant:      true,
			SecurityRated:      true,
		},
	}
}

func defaultProducts() []Product {
	return []Product{
		{
			ID:          "plise-dikey",
			Slug:        "plise-sineklik-dikey",
			Name:        "Plise (Pileli) Sineklik - Dikey",
			Category:    CategoryPlise,
			Tagline:     "Akordiyon Tasarım, Maksimum Alan Tasarrufu",
			Description: "Dikey plise sineklik sistemleri, akordiyon gibi katlanan yapısıyla kullanılmadığında neredeyse görünmez. En çok tercih edilen modern sineklik çözümü.",
			Features: []string{
				"Akordiyon (plise) katlama sistemi",
				"İthal polyester tül - görüşü engellemez",
				"İp gerginlik ayar sistemi",
				"Rüzgarda sallanma yapmaz",
				"Manyetik veya mekanik kilit",
				"UV dayanımlı profil",
			},
			FAQ: []FAQEntry{
				{
					Question: "Plise sineklik rüzgarda sallanır mı?",
					Answer:   "Hayır. Sistemde özel ip gerginlik ayarı bulunur; tül her zaman gergin kalır ve rüzgarda bile sallanmaz.",
				},
				{
					Question: "Plise sineklik temizliği nasıl yapılır?",
					Answer:   "Kuru veya nemli yumuşak bez ile silinir, tülü çıkarmaya gerek yoktur.",
				},
			},
		},
		{
			ID:          "plise-yatay",
			Slug:        "plise-sineklik-yatay",
			Name:        "Plise (Pileli) Sineklik - Yatay",
			Category:    CategoryPlise,
			Tagline:     "Yukarı-Aşağı Hareket, Pencereler İçin İdeal",
			Description: "Yatay plise sineklik yukarıdan aşağıya doğru açılır; vasistas ve düşey pencereler için en pratik çözüm.",
			Features: []string{
				"Yatay akordiyon katlama",
				"Dengeleme yay mekanizması",
				"İstenilen yükseklikte sabitleme",
				"Vasistas pencere uyumlu",
				"Gizli üst kasa",
			},
			FAQ: []FAQEntry{
				{
					Question: "Yatay plise sineklik kendiliğinden düşer mi?",
					Answer:   "Hayır. Dengeleme yay mekanizması yerçekimini dengeler; tül bırakıldığı yükseklikte sabit kalır.",
				},
			},
		},
		{
			ID:          "kedi-sinekligi",
			Slug:        "kedi-sinekligi-pet-screen",
			Name:        "Kedi Sinekliği (Pet Screen)",
			Category:    CategoryKedi,
			Tagline:     "Patilere Dayanıklı, Dostlarınıza Güvenli",
			Description: "Evcil hayvan tırnaklarına karşı 7 kat daha dayanıklı TuffScreen tül ile üretilir. Yırtılmaz, deforme olmaz.",
			Features: []string{
				"TuffScreen yırtılmaz tül",
				"7 kat artırılmış dayanıklılık",
				"Çelik tel takviyeli yapı",
				"Pet-proof emniyet kilidi",
				"Güçlendirilmiş alüminyum çerçeve",
			},
			FAQ: []FAQEntry{
				{
					Question: "Kedi sinekliği gerçekten yırtılmaz mı?",
					Answer:   "Evet. TuffScreen tül vinil kaplı polyester ve çelik takviye ile üretilir; normal ev kedisi tırnakları bu tülü yırtamaz.",
				},
				{
					Question: "Kilit mekanizması kediler tarafından açılabilir mi?",
					Answer:   "Hayır. Pet-proof emniyet kilidi pati veya burun ile açılamayacak şekilde tasarlanmıştır.",
				},
			},
		},
		{
			ID:          "surme-sineklik",
			Slug:        "surme-sineklik-sistemi",
			Name:        "Sürme Sineklik Sistemi",
			Category:    CategorySurme,
			Tagline:     "Klasik Güvenilirlik, Kolay Kullanım",
			Description: "Sürme sineklik sistemleri yatay ray üzerinde kayarak açılır. Geniş pencereler ve balkon kapıları için ekonomik ve pratik çözüm.",
			Features: []string{
				"Çift ray sistemi",
				"Yumuşak sürme mekanizması",
				"Kolay sökülebilir panel",
				"Toz tutucu fırça fitil",
				"Ayarlanabilir tekerlek yüksekliği",
			},
			FAQ: []FAQEntry{
				{
					Question: "Sürme sineklik raydan çıkar mı?",
					Answer:   "Kaliteli montajda çıkmaz; sistemde anti-lift mekanizma bulunur ve tekerlekler ray içinde kilitlenir.",
				},
			},
		},
		{
			ID:          "menteseli-sineklik",
			Slug:        "menteseli-kapi-sinekligi",
			Name:        "Menteşeli Kapı Sinekliği",
			Category:    CategoryMenteseli,
			Tagline:     "Kapılar İçin Profesyonel Çözüm",
			Description: "Menteşeli sineklik kapılar, giriş ve balkon kapıları için ideal. Otomatik kapanma mekanizması ve dayanıklı alüminyum çerçeve.",
			Features: []string{
				"3 noktalı menteşe sistemi",
				"Otomatik kapanma mekanizması",
				"Ayarlanabilir kapama hızı",
				"Pet kapısı opsiyonu",
				"Çift kanat seçeneği",
			},
			FAQ: []FAQEntry{
				{
					Question: "Menteşeli sineklik sert kapanır mı?",
					Answer:   "Hayır. Ayarlanabilir yaylı kapama mekanizması ile kapanma hızı kontrol edilir.",
				},
			},
		},
		{
			ID:          "stor-sineklik",
			Slug:        "stor-sineklik-sistemi",
			Name:        "Stor (Rulo) Sineklik Sistemi",
			Category:    CategoryStor,
			Tagline:     "Gizli Kutu, Otomatik Sarım",
			Description: "Stor sineklik kullanılmadığında kasaya sarılarak tamamen gizlenir. Otomatik geri sarım mekanizması ile modern kullanım.",
			Features: []string{
				"Gizli kasa tasarımı",
				"Otomatik yaylı sarım",
				"Soft close (yavaş sarım)",
				"Manyetik tutma sistemi",
				"Sessiz çalışma",
			},
		},
	}
}

func defaultCriteria() []Criterion {
	return []Criterion{
		{
			Key:   CriterionPetOwnership,
			Label: "Evcil Hayvan",
			Options: []Option{
				{Value: "none", Label: "Yok", Materials: []string{"standard-fiberglass", "poll-tex-allergy"}},
				{Value: "cat", Label: "Kedi", Materials: []string{"petscreen-vinyl", "tuffscreen-heavy"}},
				{Value: "dog", Label: "Köpek", Materials: []string{"petscreen-vinyl", "steel-mesh-security"}},
				{Value: "both", Label: "Her İkisi", Materials: []string{"steel-mesh-security", "petscreen-vinyl"}},
			},
		},
		{
			Key:   CriterionFloorLevel,
			Label: "Kat Seviyesi (Rüzgar Faktörü)",
			Options: []Option{
				{Value: "ground", Label: "Zemin/Bahçe Katı", WindFactor: 1, Categories: []Category{CategoryMenteseli, CategorySurme}},
				{Value: "low", Label: "1-3. Kat", WindFactor: 2, Categories: []Category{CategoryPlise, CategorySurme}},
				{Value: "mid", Label: "4-8. Kat", WindFactor: 3, Categories: []Category{CategoryPlise, CategoryStor}},
				{Value: "high", Label: "9+ Kat", WindFactor: 4, Categories: []Category{CategoryPlise, CategoryStor}},
			},
		},
		{
			Key:   CriterionUsageFrequency,
			Label: "Kullanım Sıklığı",
			Options: []Option{
				{Value: "low", Label: "Nadiren (Mevsimlik)", Categories: []Category{CategoryMenteseli, CategorySurme}},
				{Value: "medium", Label: "Orta (Haftada Birkaç)", Categories: []Category{CategoryPlise, CategorySurme}},
				{Value: "high", Label: "Yoğun (Her Gün)", Categories: []Category{CategoryPlise, CategoryStor}},
				{Value: "constant", Label: "Sürekli Açık", Categories: []Category{CategoryMenteseli, CategorySurme}},
			},
		},
		{
			Key:   CriterionAllergyStatus,
			Label: "Alerji Durumu",
			Options: []Option{
				{Value: "none", Label: "Alerji Yok", Materials: []string{"standard-fiberglass"}},
				{Value: "mild", Label: "Hafif Alerji", Materials: []string{"nano-clear-antidust"}},
				{Value: "severe", Label: "Ağır Alerji/Astım", Materials: []string{"poll-tex-allergy"}},
			},
		},
	}
}

func defaultPricing() []CategoryPricing {
	return []CategoryPricing{
		{
			Category:           CategoryPlise,
			Name:               "Plise Sineklik",
			BasePerSquareMeter: PriceRange{Min: 850, Max: 1200},
			InstallationFee:    150,
			MeshUpgrades: []MeshUpgrade{
				{MaterialID: "standard-fiberglass", Name: "Standart Fiberglass", AddPerSquareMeter: 0},
				{MaterialID: "premium-polyester", Name: "Premium Polyester", AddPerSquareMeter: 100},
				{MaterialID: "petscreen-vinyl", Name: "PetScreen (Kedi)", AddPerSquareMeter: 250},
				{MaterialID: "poll-tex-allergy", Name: "Poll-tex Alerji", AddPerSquareMeter: 350},
			},
		},
		{
			Category:           CategorySurme,
			Name:               "Sürme Sineklik",
			BasePerSquareMeter: PriceRange{Min: 550, Max: 800},
			InstallationFee:    100,
			MeshUpgrades: []MeshUpgrade{
				{MaterialID: "standard-fiberglass", Name: "Standart Fiberglass", AddPerSquareMeter: 0},
				{MaterialID: "premium-polyester", Name: "Premium Polyester", AddPerSquareMeter: 80},
				{MaterialID: "petscreen-vinyl", Name: "PetScreen (Kedi)", AddPerSquareMeter: 200},
			},
		},
		{
			Category:           CategoryMenteseli,
			Name:               "Menteşeli Sineklik",
			BasePerSquareMeter: PriceRange{Min: 600, Max: 900},
			InstallationFee:    120,
			MeshUpgrades: []MeshUpgrade{
				{MaterialID: "standard-fiberglass", Name: "Standart Fiberglass", AddPerSquareMeter: 0},
				{MaterialID: "petscreen-vinyl", Name: "PetScreen (Kedi)", AddPerSquareMeter: 200},
				{MaterialID: "steel-mesh-security", Name: "Çelik Güvenlik", AddPerSquareMeter: 500},
			},
		},
		{
			Category:           CategoryStor,
			Name:               "Stor Sineklik",
			BasePerSquareMeter: PriceRange{Min: 950, Max: 1400},
			InstallationFee:    180,
			MeshUpgrades: []MeshUpgrade{
				{MaterialID: "standard-fiberglass", Name: "Standart Fiberglass", AddPerSquareMeter: 0},
				{MaterialID: "premium-polyester", Name: "Premium Polyester", AddPerSquareMeter: 120},
			},
		},
		{
			Category:           CategoryKedi,
			Name:               "Kedi Sinekliği",
			BasePerSquareMeter: PriceRange{Min: 1100, Max: 1600},
			InstallationFee:    200,
			MeshUpgrades: []MeshUpgrade{
				{MaterialID: "tuffscreen-heavy", Name: "TuffScreen 7x", AddPerSquareMeter: 0},
				{MaterialID: "steel-reinforced", Name: "Çelik Takviyeli", AddPerSquareMeter: 300},
			},
		},
	}
}
