package morse

var table = map[Symbols]string{
	".-":     "A",
	".-.-":   "Ä",
	"-...":   "B",
	"-.-.":   "C",
	"----":   "CH",
	"-..":    "D",
	".":      "E",
	"..-.":   "F",
	"--.":    "G",
	"....":   "H",
	"..":     "I",
	".---":   "J",
	"-.-":    "K",
	".-..":   "L",
	"--":     "M",
	"-.":     "N",
	"---":    "O",
	"---.":   "Ö",
	".--.":   "P",
	"--.-":   "Q",
	".-.":    "R",
	"...":    "S",
	"-":      "T",
	"..-":    "U",
	"..--":   "Ü",
	"...-":   "V",
	".--":    "W",
	"-..-":   "X",
	"-.--":   "Y",
	"--..":   "Z",
	"-----":  "0",
	".----":  "1",
	"..---":  "2",
	"...--":  "3",
	"....-":  "4",
	".....":  "5",
	"-....":  "6",
	"--...":  "7",
	"---..":  "8",
	"----.":  "9",
	".-.-.":  "+",
	"--..--": ",",
	"-....-": "-",
	".-.-.-": ".",
	"-..-.":  "/",
	"---...": ";",
	"-...-":  "=",
	"..--..": "?",
	".--.-.": "@",
	".-...":  "<AS>",
	"...-.-": "<SK>",
}
