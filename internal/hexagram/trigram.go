package hexagram

// Trigram is a three-line group indexed by its Yin/Yang bit pattern,
// bit 0 being the bottom line.
type Trigram uint8

const (
	Earth Trigram = iota
	Thunder
	Water
	Lake
	Mountain
	Fire
	Wind
	Heaven
)

var trigramNames = [8]string{
	"Earth", "Thunder", "Water", "Lake", "Mountain", "Fire", "Wind", "Heaven",
}

// TrigramOf computes the trigram formed by three lines, bottom first.
func TrigramOf(lines [3]LineState) Trigram {
	var idx Trigram
	for i, l := range lines {
		if l.IsYang() {
			idx |= 1 << i
		}
	}
	return idx
}

// Name returns the trigram's image name, e.g. "Heaven".
func (t Trigram) Name() string {
	if int(t) >= len(trigramNames) {
		return "Unknown"
	}
	return trigramNames[t]
}

func (t Trigram) String() string { return t.Name() }
