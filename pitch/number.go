package pitch

var numberLetters = [7]string{"1", "2", "3", "4", "5", "6", "7"}

var (
	numberTable     = buildTable(numberLetters)
	numberCanonical = buildCanonical(numberLetters)
)
