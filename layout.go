package oneaway

// The two adjacency tables are process-wide read-only data: built once in
// the var block below and never written afterwards. Keys are the 26
// lowercase ASCII letters; values are ordered neighbor lists.

// qwertyHorizontal maps each letter to its same-row neighbors.
var qwertyHorizontal = map[rune][]rune{
	// Row 1
	'q': {'w'},
	'w': {'q', 'e'},
	'e': {'w', 'r'},
	'r': {'e', 't'},
	't': {'r', 'y'},
	'y': {'t', 'u'},
	'u': {'y', 'i'},
	'i': {'u', 'o'},
	'o': {'i', 'p'},
	'p': {'o'},
	// Row 2
	'a': {'s'},
	's': {'a', 'd'},
	'd': {'s', 'f'},
	'f': {'d', 'g'},
	'g': {'f', 'h'},
	'h': {'g', 'j'},
	'j': {'h', 'k'},
	'k': {'j', 'l'},
	'l': {'k'},
	// Row 3
	'z': {'x'},
	'x': {'z', 'c'},
	'c': {'x', 'v'},
	'v': {'c', 'b'},
	'b': {'v', 'n'},
	'n': {'b', 'm'},
	'm': {'n'},
}

// qwertyVertical maps each letter to its neighbors on the rows above and
// below, reading the staggered QWERTY columns.
var qwertyVertical = map[rune][]rune{
	// Row 1
	'q': {'a'},
	'w': {'a', 's'},
	'e': {'s', 'd'},
	'r': {'d', 'f'},
	't': {'f', 'g'},
	'y': {'g', 'h'},
	'u': {'h', 'j'},
	'i': {'j', 'k'},
	'o': {'k', 'l'},
	'p': {'l'},
	// Row 2
	'a': {'q', 'w', 'z'},
	's': {'w', 'e', 'z', 'x'},
	'd': {'e', 'r', 'x', 'c'},
	'f': {'r', 't', 'c', 'v'},
	'g': {'t', 'y', 'v', 'b'},
	'h': {'y', 'u', 'b', 'n'},
	'j': {'u', 'i', 'n', 'm'},
	'k': {'i', 'o', 'm'},
	'l': {'o', 'p'},
	// Row 3
	'z': {'a', 's'},
	'x': {'s', 'd'},
	'c': {'d', 'f'},
	'v': {'f', 'g'},
	'b': {'g', 'h'},
	'n': {'h', 'j'},
	'm': {'j', 'k'},
}
