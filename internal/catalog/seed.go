package catalog

import "github.com/eluxe/eluxe-backend/internal/models"

// seedProducts is the full ELUXE collection.
var seedProducts = []*models.Product{
	{
		ID:          1,
		Name:        "Noir Elegance",
		Price:       3500,
		Image:       "images/A_premium_luxury_2k_202601202332.jpeg",
		Description: "The Noir Elegance is the pinnacle of our collection. Crafted from aviation-grade aluminum and hand-blown Bohemian crystal.",
		Features:    []string{"Matte Black Finish", "Quiet Purge System", "Medical Grade Silicone Hose", "Magnetic Connectors"},
	},
	{
		ID:          2,
		Name:        "Emerald Sovereign",
		Price:       4500,
		Image:       "images/A_luxury_hookah_2k_202601202338.jpeg",
		Description: "A statement piece that combines traditional aesthetics with modern engineering. Finished with 24K gold plating.",
		Features:    []string{"24K Gold Plated", "Crystal Glass Base", "Leather Wrapped Hose", "Adjustable Diffuser"},
	},
	{
		ID:          3,
		Name:        "Arctic Minimalist",
		Price:       2200,
		Image:       "images/A_modern_minimalist_2k_202601202334.jpeg",
		Description: "Sleek, clean, and powerful. The Arctic Minimalist is designed for those who appreciate the beauty of simplicity.",
		Features:    []string{"Anodized Aluminum", "Hidden Blow-off", "Compact Design", "Universal Bowl Adapter"},
	},
	{
		ID:          4,
		Name:        "Crystal Chrome Luxe",
		Price:       4800,
		Image:       "images/A luxury designer hookah with a crystal-cut glass base and chrome stem, reflections sparkling under studio lights, black background, smooth smoke swirls, elegant and premium look, ultra-detailed, professional luxury product photography.jpeg",
		Description: "A masterpiece of reflection and light. This designer hookah features a crystal-cut glass base that sparkles with every draw.",
		Features:    []string{"Hand-Cut Crystal", "Chrome Polish Stem", "Smooth Flow Tech", "Studio-Grade Finish"},
	},
	{
		ID:          5,
		Name:        "Stellar Stainless",
		Price:       3200,
		Image:       "images/A_luxury_stainless_2k_202601202345.jpeg",
		Description: "Engineered for durability without compromising on style. The Stellar Stainless is proof that industrial design can be luxurious.",
		Features:    []string{"V2A Stainless Steel", "Easy-Cleaning Design", "Vertical Purge", "Weighted Base Stability"},
	},
	{
		ID:          6,
		Name:        "Limited Edition Gold",
		Price:       5000,
		Image:       "images/A_limitededition_luxury_2k_202601202348.jpeg",
		Description: "A rare treasure for the true collector. Only 50 units produced worldwide, featuring a unique numbered engraving.",
		Features:    []string{"Numbered 1-50", "Double-Gold Plated", "Hand-Etched Accents", "Certificate of Authenticity"},
	},
	{
		ID:          7,
		Name:        "Imperial Nomad",
		Price:       2800,
		Image:       "images/A_traditional_arabic_2k_202601202334.jpeg",
		Description: "Inspired by nomadic heritage, this hookah features intricate engravings and a solid brass heart for exceptional performance.",
		Features:    []string{"Solid Brass Body", "Traditional Port Design", "Premium Clay Bowl", "Suede Carry Bag"},
	},
	{
		ID:          8,
		Name:        "Prism Designer",
		Price:       3800,
		Image:       "images/A_designer_hookah_2k_202601202337.jpeg",
		Description: "A collaboration with contemporary artists. Each piece features a unique iridescent finish that changes with the light.",
		Features:    []string{"Titanium Coating", "Borosilicate Glass", "Custom Flow Control", "Unique Serial Number"},
	},
	{
		ID:          9,
		Name:        "Eclipse Compact",
		Price:       1800,
		Image:       "images/A_compact_portable_2k_202601202335.jpeg",
		Description: "Performance in a portable package. The Eclipse Compact delivers full-size smoke production in a travel-friendly size.",
		Features:    []string{"Threaded Base", "Carbon Fiber Accents", "Hard Shell Case", "Anti-kink Hose"},
	},
	{
		ID:          10,
		Name:        "High-End Prestige",
		Price:       4200,
		Image:       "images/A_highend_luxury_2k_202601202339.jpeg",
		Description: "The definition of prestige. Each component is precision-machined and inspected for absolute perfection.",
		Features:    []string{"Precision Machined", "Silent Draw Technology", "Diamond-Cut Base", "Modular Stem System"},
	},
	{
		ID:          11,
		Name:        "Royal Velvet",
		Price:       3100,
		Image:       "images/A_luxury_designer_2k_202601202348.jpeg",
		Description: "Soft to the touch but bold in performance. This luxury designer piece uses velvet-touch coatings for an unmatched tactile experience.",
		Features:    []string{"Velvet-Touch Finish", "Ergonomic Grip", "High-Flow Downstem", "Integrated LED Base"},
	},
	{
		ID:          12,
		Name:        "Avant-Garde Stylish",
		Price:       3400,
		Image:       "images/A_stylish_hookah_2k_202601202336.jpeg",
		Description: "A bold fashion statement. The Avant-Garde features asymmetric design elements that challenge traditional hookah silhouettes.",
		Features:    []string{"Asymmetric Design", "Metallic Pearl Finish", "Custom Glass Tray", "Extended Hose Support"},
	},
}
