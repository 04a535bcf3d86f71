// Package seed содержит стартовые данные каталога, туториалов, мастеров
// и ленты сообщества. Коллекции возвращают свежие срезы, чтобы вызывающая
// сторона могла свободно их изменять.
package seed

import "github.com/monicarachel101026-prog/Nailora/internal/models"

// Designs возвращает стартовый набор дизайнов каталога.
func Designs() []models.Design {
	return []models.Design{
		{
			ImgSrc:        "https://i.ibb.co/7g7Z0V8/new-glazed-donut.jpg",
			Title:         "Glazed Donut Nails",
			DominantColor: "Nude",
			Style:         "Elegant",
			Length:        "Medium",
			Tags:          []string{"hailey bieber", "chrome", "pearly", "viral"},
			Artist:        "Sarah M.",
			Description:   "Desain ikonik yang dipopulerkan oleh Hailey Bieber, memberikan kilau sehat seperti donat berlapis gula.",
		},
		{
			ImgSrc:        "https://i.ibb.co/hK7tqgW/micro-french.png",
			Title:         "Micro French Tips",
			DominantColor: "Putih",
			Style:         "Simple",
			Length:        "Short",
			Tags:          []string{"minimalist", "french", "clean girl"},
			Artist:        "Luna C.",
			Description:   "Versi modern dari French Manicure klasik dengan ujung kuku yang sangat tipis, memberikan tampilan yang chic dan minimalis.",
		},
		{
			ImgSrc:        "https://i.ibb.co/hLqGg3G/lip-gloss.png",
			Title:         "Lip Gloss Nails",
			DominantColor: "Pink",
			Style:         "Cute",
			Length:        "Medium",
			Tags:          []string{"glossy", "jelly", "transparan"},
			Artist:        "Alya P.",
			Description:   "Kuku dengan hasil akhir super glossy dan transparan berwarna pink, meniru tampilan bibir yang berkilau.",
		},
		{
			ImgSrc:        "https://i.ibb.co/MnvkS1z/coquette.png",
			Title:         "Coquette / Balletcore",
			DominantColor: "Pink",
			Style:         "Cute",
			Length:        "Long",
			Tags:          []string{"bows", "pearls", "girly", "ribbon"},
			Artist:        "Emma R.",
			Description:   "Desain yang terinspirasi dari pita, mutiara, dan estetika balet yang feminin dan lembut.",
		},
		{
			ImgSrc:        "https://i.ibb.co/tZ5wFtr/y2k-chrome.png",
			Title:         "Y2K Chrome Flowers",
			DominantColor: "Perak",
			Style:         "Bold",
			Length:        "Long",
			Tags:          []string{"y2k", "futuristic", "metallic", "3d"},
			Artist:        "Sarah M.",
			Description:   "Bunga-bunga dengan efek kromatik perak yang mengingatkan pada tren futuristik era Y2K.",
			IsPremium:     true,
		},
		{
			ImgSrc:        "https://i.ibb.co/F8q1f60/glitter-bomb.png",
			Title:         "Glitter Bomb",
			DominantColor: "Glitter & Efek",
			Style:         "Luxury",
			Length:        "Medium",
			Tags:          []string{"glitter", "party", "sparkle"},
			Artist:        "Alya P.",
			Description:   "Taburan glitter penuh untuk momen pesta, berkilau dari segala sudut.",
			IsPremium:     true,
		},
		{
			ImgSrc:        "https://i.ibb.co/F5p1V0n/velvet.png",
			Title:         "Velvet Nails",
			DominantColor: "Merah",
			Style:         "Elegant",
			Length:        "Medium",
			Tags:          []string{"velvet", "magnetic", "cat eye"},
			Artist:        "Emma R.",
			Description:   "Efek beludru magnetis yang lembut dan mewah, berubah kilau mengikuti cahaya.",
			IsPremium:     true,
		},
		{
			ImgSrc:        "https://i.ibb.co/dGt0Mwg/aura.png",
			Title:         "Aura Nails",
			DominantColor: "Ungu",
			Style:         "Bold",
			Length:        "Medium",
			Tags:          []string{"aura", "gradient", "airbrush"},
			Artist:        "Luna C.",
			Description:   "Gradasi warna aura yang lembut dengan teknik airbrush, cocok untuk suasana liburan.",
		},
	}
}

// Tutorials возвращает стартовый набор туториалов:
// пошаговый и видео-вариант.
func Tutorials() []models.Tutorial {
	return []models.Tutorial{
		{
			ID:          "tut-basic-nail-art",
			Kind:        models.TutorialKindSteps,
			Title:       "Cara Membuat Nail Art Simple & Rapi",
			Description: "Tips ini membantu kamu membuat nail art basic dengan hasil rapi walaupun pemula.",
			Category:    "Beginner",
			Difficulty:  "Pemula",
			Duration:    "3 Menit Baca",
			ImgSrc:      "https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?auto=format&fit=crop&q=80&w=300&h=200",
			Tools:       []string{"Base Coat", "Dua Warna Kutek", "Dotting Tool / Kuas Kecil", "Remover & Cotton Bud", "Top Coat", "Cuticle Oil"},
			Notes: []string{
				"Gunakan lapisan tipis agar tidak mudah retak.",
				"Jika tangan bergetar, lakukan garis perlahan dari arah tengah.",
			},
			Steps: []models.TutorialStep{
				{Order: 1, Title: "Bersihkan kuku", Description: "Cuci tangan lalu bersihkan permukaan kuku dari minyak atau debu agar kutek menempel sempurna."},
				{Order: 2, Title: "Gunakan base coat tipis", Description: "Oleskan satu lapis tipis base coat untuk melindungi kuku dan membuat warna lebih rata."},
				{Order: 3, Title: "Pilih warna dasar", Description: "Aplikasikan warna dasar pilihanmu sebanyak dua kali lapis agar hasilnya solid dan tidak menerawang."},
				{Order: 4, Title: "Mulai gambar pola", Description: "Gunakan dotting tool atau kuas kecil untuk membuat garis atau pola sederhana sesuai keinginan."},
				{Order: 5, Title: "Perbaiki bagian yang meleset", Description: "Jika ada coretan di kulit, gunakan cotton bud kecil yang dicelup remover untuk merapikan tepiannya."},
				{Order: 6, Title: "Kunci dengan top coat", Description: "Tunggu kering 1-2 menit lalu oleskan top coat agar warna tahan lama dan mengkilap."},
			},
			UploaderName:   "Nailora Official",
			UploaderAvatar: "https://picsum.photos/seed/nailora/100/100",
			Likes:          342,
			Comments:       []models.Comment{},
		},
		{
			ID:             "tut-french-video",
			Kind:           models.TutorialKindVideo,
			Title:          "Video: French Manicure di Rumah",
			Description:    "Ikuti video singkat ini untuk membuat french manicure klasik tanpa ke salon.",
			Category:       "Basic Step",
			Difficulty:     "Pemula",
			Duration:       "5 Menit",
			ImgSrc:         "https://images.unsplash.com/photo-1604654894610-df63bc536371?auto=format&fit=crop&q=80&w=300&h=200",
			VideoSrc:       "https://videos.nailora.app/tutorials/french-manicure.mp4",
			UploaderName:   "Alya Putri",
			UploaderAvatar: "https://picsum.photos/seed/user1/100/100",
			Likes:          188,
			Comments:       []models.Comment{},
			IsPremium:      true,
		},
	}
}

// Artists возвращает справочник мастеров. Данные только для чтения.
func Artists() []models.Artist {
	return []models.Artist{
		{Initial: "SM", Name: "Sarah Martinez", Rating: 4.9, Reviews: 156, Services: []string{"Gel Extensions", "Nail Art", "+1"}, Salon: "Salon Cantik", Distance: 0.8, Price: "100K-200K", Available: true},
		{Initial: "LC", Name: "Luna Chen", Rating: 4.7, Reviews: 203, Services: []string{"Minimalist Art", "Gel Polish", "+1"}, Salon: "Zen Nails Spa", Distance: 3.2, Price: "80K-150K", Available: false},
		{Initial: "AP", Name: "Alya Putri", Rating: 4.9, Reviews: 178, Services: []string{"Gel Polish", "French Manicure", "+1"}, Salon: "Nailora Studio", Distance: 2.5, Price: "120K-180K", Available: true},
		{Initial: "ER", Name: "Emma Rodriguez", Rating: 4.8, Reviews: 89, Services: []string{"Acrylic Nails", "Custom Designs", "+1"}, Salon: "Beauty Studio Plus", Distance: 1.9, Price: "150K-250K", Available: true},
	}
}

// Posts возвращает стартовую ленту сообщества.
func Posts() []models.Post {
	return []models.Post{
		{
			ID:         "post-sakura",
			UserAvatar: "https://picsum.photos/seed/user1/100/100",
			UserName:   "Alya Putri",
			Time:       "2 jam lalu",
			Caption:    "Suka banget sama desain kuku sakura ini!",
			Image:      "https://picsum.photos/seed/cat3/400/500",
			Likes:      128,
		},
		{
			ID:         "post-glitter",
			UserAvatar: "https://picsum.photos/seed/user2/100/100",
			UserName:   "Jane Doe",
			Time:       "5 jam lalu",
			Caption:    "Glitter gold untuk party besok!",
			Image:      "https://picsum.photos/seed/glitter/400/500",
			Likes:      97,
		},
	}
}
