package pitch

// Western letters in degree order: C is the tonic.
var westernLetters = [7]string{"C", "D", "E", "F", "G", "A", "B"}

var (
	westernTable     = buildTable(westernLetters)
	westernCanonical = buildCanonical(westernLetters)
)
