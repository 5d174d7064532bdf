package names

// Two disjoint dictionaries for generated display names: plant and nature
// terms for the first word, virtues and qualities for the second.

var prefixes = []string{
	"Anggrek", "Aren", "Asoka", "Aster", "Bakau", "Bakung", "Bambu", "Bugenvil",
	"Ceri", "Cempaka", "Cendana", "Cengkeh", "Dahlia", "Damar", "Duku", "Durian",
	"Gaharu", "Jahe", "Jambu", "Jarak", "Jati", "Jeruk", "Kamala", "Krisan",
	"Kelapa", "Kemiri", "Kenanga", "Kopi", "Kunyit", "Labu", "Lada", "Lavender",
	"Leci", "Lili", "Lumut", "Mangga", "Mawar", "Melati", "Meranti", "Nangka",
	"Nanas", "Naga", "Pakis", "Pala", "Pandan", "Pepaya", "Pinus", "Pisang",
	"Rosela", "Rotan", "Sagu", "Salak", "Serai", "Seruni", "Soka", "Sukun",
	"Talas", "Teratai",
}

var virtues = []string{
	"Abadi", "Adil", "Agung", "Aman", "Amanah", "Andal", "Anggun", "Arif",
	"Asri", "Bahagia", "Bakti", "Benar", "Berani", "Berkat", "Bestari", "Bijak",
	"Budiman", "Cahaya", "Cekatan", "Cemerlang", "Cerdas", "Damai", "Dermawan", "Elok",
	"Gagah", "Gemilang", "Gembira", "Harmoni", "Hebat", "Hening", "Hormat", "Ikhlas",
	"Indah", "Jaya", "Jernih", "Jujur", "Juara", "Kuat", "Kukuh", "Lancar",
	"Luhur", "Makmur", "Megah", "Menawan", "Mulia", "Murni", "Perkasa", "Pesona",
	"Rahmat", "Rajin", "Ramah", "Riang", "Rupawan", "Sabar", "Sakti", "Saleh",
	"Santun", "Sehat", "Sempurna", "Sentosa", "Setia", "Syahdu", "Tangguh", "Teduh",
}
