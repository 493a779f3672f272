package reward

// Payout ranges in dollars:
// common 50-200, uncommon 150-500, rare 400-2k, epic 1.5k-6k,
// legendary 10k-50k, secret 100k-1M.
var jobTable = map[Class]JobClass{
	ClassCommon: {
		Payout: PayoutRange{Min: 50, Max: 200},
		Labels: []string{
			"washed someone's car", "mowed a lawn", "delivered a pizza", "walked a dog", "helped carry groceries",
			"cleaned a garage", "painted a fence", "tutored a kid", "bagged groceries", "worked as a cashier",
			"raked leaves", "did laundry", "shoveled snow", "washed dishes", "babysat for a neighbor",
			"picked up trash", "organized a closet", "recycled cans", "swept a porch", "helped move furniture",
			"assembled flat-pack furniture", "sorted library books", "wiped store shelves", "restocked a cooler", "cleaned aquarium glass",
			"handed out flyers", "watered plants", "vacuumed a car interior", "cleaned windows", "ran a coffee errand",
			"set up folding chairs", "took down decorations", "organized a toolbox", "wiped down gym equipment", "carried groceries to a car",
			"rolled silverware at a diner", "sorted mail", "counted inventory", "bagged leaves", "refilled bird feeders",
		},
	},
	ClassUncommon: {
		Payout: PayoutRange{Min: 150, Max: 500},
		Labels: []string{
			"fixed a bike", "painted a room", "carried heavy boxes", "helped repair a fence", "dog-sat overnight",
			"assembled a PC", "installed a ceiling fan", "detailed a car", "set up a backyard tent", "mounted a TV",
			"repaired a leaky faucet", "edited a short video", "designed a flyer", "photographed a birthday", "set up a sound system",
			"installed window blinds", "organized a garage sale", "prepped meal boxes", "built a garden bed", "patched drywall",
		},
	},
	ClassRare: {
		Payout: PayoutRange{Min: 400, Max: 2000},
		Labels: []string{
			"modeled for a commercial", "worked backstage at a concert", "helped a local news team",
			"carried VIP luggage", "painted a mural", "assisted a photographer", "drove a limo for a wedding",
			"ran lights for a theater show", "catered a private event", "guided a city tour",
			"commissioned a pet portrait", "fixed a vintage record player", "restored a bicycle",
			"DJ'd a school dance", "shot drone footage for real estate",
		},
	},
	ClassEpic: {
		Payout: PayoutRange{Min: 1500, Max: 6000},
		Labels: []string{
			"helped on a movie set", "delivered a speech for the mayor", "flew as a private-jet assistant",
			"guided a celebrity tour", "modeled designer clothes", "staged a luxury home",
			"produced a pop-up event", "shot a brand campaign", "ghost-wrote a viral post",
			"consulted on game balance", "built a custom keyboard", "restored a classic arcade cabinet",
		},
	},
	ClassLegendary: {
		Payout: PayoutRange{Min: 10000, Max: 50000},
		Labels: []string{
			"helped launch a rocket", "discovered hidden treasure", "performed in a world-famous concert",
			"auctioned a rare collector's card", "found a mint-condition comic", "rescued a stranded yacht",
			"won a hackathon grand prize", "flipped a barn-find motorcycle", "sold a vintage camera collection",
		},
	},
	ClassSecret: {
		Payout: PayoutRange{Min: 100000, Max: 1000000},
		Labels: []string{
			"won a mysterious briefcase auction", "found a safe behind a wall", "sold a rare diamond at midnight",
		},
	},
}

// specialJobs are rolled through their own trigger, separate from rarities.
// Order matters only for the uniform pick; gates make some rarer than others.
var specialJobs = []SpecialJob{
	{
		Name:         "dev",
		Flavor:       "DEV JOB — how did you get this? Are you cheating? What? Who are you?!?!",
		Payout:       PayoutRange{Min: 1000000, Max: 1000000},
		UsesRareGate: true,
	},
	{
		Name:   "toilet",
		Flavor: "yikes… you cleaned toilets and it did not go well. loser.",
		Payout: PayoutRange{Min: 0.25, Max: 0.25},
	},
	{
		Name:       "glitch",
		Flavor:     "ERR0R_J0B_N0T_F0UND_??? you glitched reality and hit a bug bounty.",
		Payout:     PayoutRange{Min: 10000, Max: 50000},
		PassChance: 0.30,
	},
	{
		Name:   "flash-sale",
		Flavor: "you got in on a meme stock, nice! sold that quickly huh? stonks.",
		Payout: PayoutRange{Min: 2500, Max: 15000},
	},
}

// tipTiers are walked in order for cumulative-weight selection.
// Higher weight = more common when a tip lands at all.
var tipTiers = []TipTier{
	{Name: "coffee change", Emoji: "☕", Mult: PayoutRange{Min: 1.05, Max: 1.15}, Weight: 25,
		Flavor: "a quick thanks and some coffee money."},
	{Name: "spare cash", Emoji: "💵", Mult: PayoutRange{Min: 1.10, Max: 1.25}, Weight: 20,
		Flavor: "they tossed in a little extra."},
	{Name: "sweet old lady", Emoji: "🧓", Mult: PayoutRange{Min: 1.25, Max: 1.75}, Weight: 16,
		Flavor: "you did a great job — she insisted you take more!"},
	{Name: "great review bonus", Emoji: "⭐", Mult: PayoutRange{Min: 1.75, Max: 2.25}, Weight: 12,
		Flavor: "5-star review and a thank-you bonus."},
	{Name: "weekend rush", Emoji: "📈", Mult: PayoutRange{Min: 2.25, Max: 2.75}, Weight: 9,
		Flavor: "busy day surge pricing hits."},
	{Name: "manager's envelope", Emoji: "✉️", Mult: PayoutRange{Min: 2.75, Max: 3.25}, Weight: 7,
		Flavor: "the boss quietly slipped you something extra."},
	{Name: "billionaire bonus", Emoji: "🤑", Mult: PayoutRange{Min: 3.00, Max: 5.00}, Weight: 5,
		Flavor: "you worked for a rich billionaire — they loved it!"},
	{Name: "angel investor", Emoji: "😇", Mult: PayoutRange{Min: 5.00, Max: 7.00}, Weight: 3,
		Flavor: "an 'angel' dropped a very generous tip."},
	{Name: "whale tip", Emoji: "🐋", Mult: PayoutRange{Min: 7.00, Max: 10.00}, Weight: 2,
		Flavor: "a high-roller was wildly impressed."},
	{Name: "legend of generosity", Emoji: "🏆", Mult: PayoutRange{Min: 10.00, Max: 12.00}, Weight: 1,
		Flavor: "a once-in-a-blue-moon legendary gratuity!"},
}

// Jobs exposes the payout range and label pool for a class
func Jobs(c Class) (JobClass, bool) {
	jc, ok := jobTable[c]
	return jc, ok
}
