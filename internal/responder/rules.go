package responder

const menuTopic = "menu"

const menuTemplate = "I can help you with:\n" +
	"• Tile prices and offers\n" +
	"• FREE sample requests\n" +
	"• Collections and new designs\n" +
	"• Finding a dealer or showroom near you\n" +
	"• Installation and maintenance guidance\n" +
	"• Warranty and delivery questions\n" +
	"Just tell me what you're looking for!"

func static(text string) func(Context) string {
	return func(Context) string { return text }
}

// defaultRules is the priority-ordered keyword table. Earlier rules win,
// so specific product topics sit above the generic greeting and thanks.
func defaultRules() []rule {
	return []rule{
		{
			topic:    "pricing",
			keywords: []string{"price", "cost", "rate", "budget", "expensive", "cheap"},
			respond: static("Our tiles start at ₹45 per sq.ft for ceramic wall tiles and go up to " +
				"₹350 per sq.ft for premium imported marble-look slabs. Share the room size and " +
				"tile range you like and I'll give you an estimate, or use the cost calculator " +
				"on our website for an instant quote."),
		},
		{
			topic:    "samples",
			keywords: []string{"sample", "swatch", "trial piece"},
			respond: static("We'd love for you to see the tiles in person! We ship FREE samples " +
				"of up to 4 designs to your doorstep within 5-7 working days. Just share the " +
				"product names or add them to your comparison list and request samples from there."),
		},
		{
			topic:    "collections",
			keywords: []string{"collection", "new design", "latest", "catalogue", "catalog", "range"},
			respond: static("Our 2024 collections include Marble Verse (large-format marble looks), " +
				"Urban Edge (industrial concrete finishes), Terra Craft (handmade terracotta styles) " +
				"and Aqua Guard (anti-skid bathroom series). Which space are you designing? " +
				"I can point you to the right collection."),
		},
		{
			topic:    "dealers",
			keywords: []string{"dealer", "showroom", "store", "shop near", "where can i buy", "distributor"},
			respond: static("We have 450+ dealers and showrooms across the country. Use the dealer " +
				"locator on our website to filter by state and district, or tell me your city " +
				"and I'll list the nearest Origin Tiles showrooms."),
		},
		{
			topic:    "installation",
			keywords: []string{"install", "laying", "fixing", "grout", "adhesive", "tiler"},
			respond: static("For best results we recommend installation by a certified tiler using " +
				"polymer-modified adhesive, 3mm spacers and epoxy grout in wet areas. Every tile " +
				"box includes a laying guide, and our support team can connect you with trained " +
				"installers in most cities."),
		},
		{
			topic:    "warranty",
			keywords: []string{"warranty", "guarantee", "defect", "breakage", "claim"},
			respond: static("All Origin Tiles products carry a 10-year manufacturing warranty " +
				"covering surface defects, glaze issues and dimensional accuracy. Transit breakage " +
				"reported within 48 hours of delivery is replaced free. To raise a claim, keep your " +
				"invoice handy and fill the warranty form on our website."),
		},
		{
			topic:    "calculator",
			keywords: []string{"calculator", "how many tiles", "quantity", "how much do i need", "area"},
			respond: static("Our tile calculator works out exactly how many boxes you need: enter " +
				"the room length and width, pick a tile size, and it adds a 10% wastage allowance " +
				"automatically. You'll find it under Tools → Tile Calculator on the website."),
		},
		{
			topic:    "visualizer",
			keywords: []string{"visualiz", "visualis", "preview", "see in my room", "3d view"},
			respond: static("With the TileVision visualizer you can preview any of our tiles in a " +
				"sample room or upload a photo of your own space. It's the quickest way to shortlist " +
				"designs before ordering samples — find it under Tools → Visualizer."),
		},
		{
			topic:    "specifications",
			keywords: []string{"specification", "technical", "thickness", "water absorption", "slip", "pei", "vitrified"},
			respond: static("Our vitrified tiles are 9mm thick with water absorption below 0.5%, " +
				"PEI IV abrasion rating and R10 slip resistance (R11 for the Aqua Guard anti-skid " +
				"series). Full technical datasheets are on each product page under Specifications."),
		},
		{
			topic:    "cleaning",
			keywords: []string{"clean", "maintain", "maintenance", "stain", "polish", "shine"},
			respond: static("Day-to-day, a damp mop with a mild pH-neutral cleaner is all our tiles " +
				"need — please avoid acid-based cleaners, they damage the grout. For stubborn stains " +
				"on matt finishes, a soft nylon brush with diluted detergent works well. Glazed tiles " +
				"never need polishing."),
		},
		{
			topic:    "delivery",
			keywords: []string{"delivery", "shipping", "dispatch", "how long", "transport", "track"},
			respond: static("In-stock designs dispatch within 48 hours and typically deliver in " +
				"5-10 working days depending on your location. Deliveries are kerbside with " +
				"breakage-protected packaging. Once your order ships you'll receive a tracking " +
				"link by SMS and email."),
		},
		{
			topic:    "colors",
			keywords: []string{"color", "colour", "design", "pattern", "texture", "look"},
			respond: static("Popular picks right now are warm ivory and beige marble looks for " +
				"living rooms, grey concrete textures for a modern feel, and patterned Moroccan " +
				"designs for feature walls. Tell me the room and the mood you want — bright, warm " +
				"or dramatic — and I'll suggest designs."),
		},
		{
			topic:    "sizes",
			keywords: []string{"size", "dimension", "large format", "600x600", "800x800", "big tile"},
			respond: static("We make tiles from 300x300mm up to 800x1600mm large-format slabs. " +
				"600x600mm and 800x800mm are the most popular for floors, 300x600mm for walls. " +
				"Larger formats mean fewer grout lines and a more seamless look."),
		},
		{
			topic:    "exports",
			keywords: []string{"export", "international", "overseas", "bulk order", "container"},
			respond: static("Yes, we export to 30+ countries. For bulk and container inquiries our " +
				"exports desk will share FOB pricing, packing details and lead times — write to " +
				"exports@origintiles.com with the designs and quantities you need."),
		},
		{
			topic:    "complaint",
			keywords: []string{"complaint", "issue", "problem", "damaged", "wrong", "not happy", "refund"},
			respond: static("I'm sorry to hear that — we take this seriously. Please share your " +
				"order number and a short description (photos help a lot), and our support team " +
				"will get back to you within one working day with a resolution."),
		},
		{
			topic:    "contact",
			keywords: []string{"contact", "phone", "email", "call me", "human", "agent", "talk to someone"},
			respond: static("You can reach us on 1800-120-4455 (Mon-Sat, 9am-7pm) or at " +
				"care@origintiles.com. If you'd like, leave your number here and our team will " +
				"call you back within a working day."),
		},
		{
			topic:    "greeting",
			keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "namaste"},
			respond: func(ctx Context) string {
				if ctx.PriorUserMessages == 0 {
					return "Hello! Welcome to Origin Tiles. I'm here to help you find the perfect " +
						"tiles for your space. What are you looking for today?"
				}
				return "Hello again! What else can I help you with?"
			},
		},
		{
			topic:    "thanks",
			keywords: []string{"thank", "thanks", "thx", "appreciate", "great help"},
			respond: func(ctx Context) string {
				if ctx.PriorUserMessages <= 1 {
					return "You're welcome! Is there anything else you'd like to know about our tiles?"
				}
				return "Happy to help! Do drop by one of our showrooms to see the tiles in person. " +
					"Have a great day!"
			},
		},
	}
}
