package quotes

// Builtin returns the quotes shipped with the program.
func Builtin() []Quote {
	return append([]Quote(nil), builtin...)
}

var builtin = []Quote{
	{"Raising Smart Kids for Dummies", "The sooner your kids appreciate the value of work, the more successful they will be. Work is part of life. You work to earn money, put food on the table, and keep your homes orderly and clean. For your kids, work involves schoolwork, homework, and teamwork at home and in the community."},
	{"The Empire Strikes Back", "If only you'd attached my legs, I wouldn't be in this ridiculous position. Now remember, Chewbacca, you have a responsibility to me, so don't do anything foolish!"},
	{"Dictionary", "feel number do last public life follow do this even both need day own possible like right come place during real child line face as work"},
	{"The Legend of Zelda: The Wind Waker", "In order to return the power to repel evil to your sword, you must find another to take my stead in this temple and ask the gods for their assistance. You must find the one who carries on my bloodline... The one who holds this sacred instrument."},
	{"The Unbearable Lightness of Being", "It may seem quite novelistic to you, and I am willing to agree, but only on the condition that you refrain from reading such notions as 'fictive', 'fabricated', and 'untrue to life' in the word 'novelistic'. Because human lives are composed in precisely such a fashion."},
	{"Her", "Women like her are only hard to love by men who believe love is just a word."},
	{"Lock, Stock, and Two Smoking Barrels", "What else do I get with it? - You get a gold-plated Rolls Royce, as long as you pay for it. - Don't know, Tom, seems expensive. - Seems... well this seems to be a waste of my time. That is nine hundred nicker in any shop you're lucky enough to find one in, and you're complaining about two hundred? What school of finance did you study? It's a deal, it's a steal, it's the sale of the beeping century! In fact, beep it Nick, I think I'll keep it!"},
	{"Through the Fire and Flames", "We feel the pain of a lifetime lost in a thousand days."},
	{"Seven Seas", "Burning my bridges and smashing my mirrors, turning to see if you're cowardly. Burning the witches with modern religions, you'll strike the matches and shower me. In water games washing the rocks below. Taught and tamed in time with tear flow."},
	{"Avengers: Infinity War", "With all six stones, I could simply snap my fingers, they would all cease to exist and I call that... mercy. And then what? I finally rest, and watch the sun rise on a grateful universe. The hardest choices require the strongest wills."},
}
