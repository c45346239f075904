package hexagram

// kingWen maps a 6-bit pattern (bit 0 = bottom line, 1 = yang) to the
// King Wen sequence number. Historical data; not derivable.
var kingWen = [64]int{
	2, 24, 7, 19, 15, 36, 46, 11,
	16, 51, 40, 54, 62, 55, 32, 34,
	8, 3, 29, 60, 39, 63, 48, 5,
	45, 17, 47, 58, 31, 49, 28, 43,
	23, 27, 4, 41, 52, 22, 18, 26,
	35, 21, 64, 38, 56, 30, 50, 14,
	20, 42, 59, 61, 53, 37, 57, 9,
	12, 25, 6, 10, 33, 13, 44, 1,
}

// patternOf is the inverse of kingWen, indexed by number (index 0 unused).
var patternOf [65]uint8

func init() {
	for p, n := range kingWen {
		patternOf[n] = uint8(p)
	}
}

var names = [65]string{
	"",
	"The Creative",
	"The Receptive",
	"Difficulty at the Beginning",
	"Youthful Folly",
	"Waiting",
	"Conflict",
	"The Army",
	"Holding Together",
	"The Taming Power of the Small",
	"Treading",
	"Peace",
	"Standstill",
	"Fellowship with Men",
	"Possession in Great Measure",
	"Modesty",
	"Enthusiasm",
	"Following",
	"Work on What Has Been Spoiled",
	"Approach",
	"Contemplation",
	"Biting Through",
	"Grace",
	"Splitting Apart",
	"Return",
	"Innocence",
	"The Taming Power of the Great",
	"The Corners of the Mouth",
	"Preponderance of the Great",
	"The Abysmal",
	"The Clinging",
	"Influence",
	"Duration",
	"Retreat",
	"The Power of the Great",
	"Progress",
	"Darkening of the Light",
	"The Family",
	"Opposition",
	"Obstruction",
	"Deliverance",
	"Decrease",
	"Increase",
	"Break-through",
	"Coming to Meet",
	"Gathering Together",
	"Pushing Upward",
	"Oppression",
	"The Well",
	"Revolution",
	"The Caldron",
	"The Arousing",
	"Keeping Still",
	"Development",
	"The Marrying Maiden",
	"Abundance",
	"The Wanderer",
	"The Gentle",
	"The Joyous",
	"Dispersion",
	"Limitation",
	"Inner Truth",
	"Preponderance of the Small",
	"After Completion",
	"Before Completion",
}

// Name returns the conventional English name of King Wen hexagram n, or ""
// when n is out of range.
func Name(n int) string {
	if n < 1 || n > 64 {
		return ""
	}
	return names[n]
}
