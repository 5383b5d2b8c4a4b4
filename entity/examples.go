package entity

const (
	analiaDescription = "The elf queen of Eldulia is a regal and graceful leader, revered by her people for her wisdom and kindness. With long, flowing silver hair and sparkling emerald eyes, she exudes an ethereal beauty that belies her immense power and strength. Clad in ornate, intricately woven robes that shimmer with the colors of the forest, she is a symbol of the natural world and its enduring magic. Her presence commands respect, and her words hold great weight among her subjects and allies. Despite her elegance, the elf queen is a formidable warrior, skilled in both magic and swordplay, and fiercely protective of her homeland and its inhabitants. She is a beacon of hope and guidance for the elves of Eldulia, guiding them with compassion and unwavering resolve in the face of adversity."

	eldulia = "The Forest of Eldulia"

	elduliaDescription = "The Forest of Eldulia is a sprawling and ancient woodland, teeming with life and mystery. Towering trees loom overhead, their branches interlocking to create a canopy that filters the sunlight into a dappled, ethereal glow. The forest floor is carpeted with lush mosses and ferns, concealing hidden glades and meandering streams that wind their way through the landscape. The air is alive with the rustle of leaves and the melodic calls of birds and woodland creatures. But beyond the tranquil facade, there is an undercurrent of magic and danger. Ancient ruins and forgotten relics lie buried beneath the forest's undergrowth, hinting at a forgotten civilization that once thrived in these woods. Adventurers and explorers are drawn to The Forest of Eldulia, eager to uncover its secrets and uncover the truth of its mystical inhabitants. But they must tread carefully, for the forest is shrouded in enchantments and guarded by creatures both wondrous and fearsome. The Forest of Eldulia is a place of beauty, enchantment, and peril, where the line between reality and myth begins to blur."

	guardianDescription = "As you journey through The Forest of Eldulia, you come across a clearing bathed in a surreal, otherworldly light. The air is thick with the fragrance of wildflowers, and the sounds of the forest seem to hush in reverence. In the center of the clearing, you spot a figure cloaked in shimmering robes, their face shrouded in shadow. As you cautiously approach, the figure raises their head to reveal piercing, glowing eyes that seem to bore into your very soul. The figure introduces themselves as an ancient guardian of the forest, tasked with protecting its secrets and ensuring that only those deemed worthy may pass. They offer you a challenge, a test of your courage and wisdom, to prove yourself as a true friend to the forest. If you succeed, they promise to bestow upon you a powerful artifact that will aid you in your quest."

	emberDescription = "A mote of living flame leaps from the caster's palm and settles on the target, catching on cloth, bark and bone alike. The fire spreads slowly at first, then all at once, and refuses to be smothered by anything short of running water."

	wardenDescription = "Wardens are the sworn keepers of the old woods. They read tracks the way scholars read books, speak with the beasts that shelter beneath the canopy, and fight with bow and blade to keep the wild places free of those who would burn them."
)

func ptr[T any](v T) *T {
	return &v
}
