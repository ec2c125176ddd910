package vocab

// builtinCategories is the full Spanish–English word list shipped with the
// game. Category order is the order shown in menus. "naranja" appears in
// both Frutas and Colores with different translations; categories are kept
// independent so the two entries never collide.
var builtinCategories = []categoryData{
	{
		name: "Saludos",
		words: map[string]string{
			"hola":           "hello",
			"adiós":          "goodbye",
			"buenos días":    "good morning",
			"buenas tardes":  "good afternoon",
			"buenas noches":  "good night",
			"por favor":      "please",
			"gracias":        "thank you",
			"de nada":        "you're welcome",
			"lo siento":      "I'm sorry",
			"¿cómo estás?":   "how are you?",
			"bien":           "good",
			"mal":            "bad",
			"regular":        "okay",
			"¿y tú?":         "and you?",
			"mucho gusto":    "nice to meet you",
		},
	},
	{
		name: "Frutas",
		words: map[string]string{
			"manzana": "apple",
			"plátano": "banana",
			"naranja": "orange",
			"uva":     "grape",
			"fresa":   "strawberry",
			"sandía":  "watermelon",
			"piña":    "pineapple",
			"mango":   "mango",
			"pera":    "pear",
			"melón":   "melon",
			"cereza":  "cherry",
			"limón":   "lemon",
			"kiwi":    "kiwi",
			"papaya":  "papaya",
			"coco":    "coconut",
		},
	},
	{
		name: "Animales",
		words: map[string]string{
			"perro":     "dog",
			"gato":      "cat",
			"pájaro":    "bird",
			"pez":       "fish",
			"caballo":   "horse",
			"vaca":      "cow",
			"elefante":  "elephant",
			"león":      "lion",
			"tigre":     "tiger",
			"oso":       "bear",
			"mono":      "monkey",
			"serpiente": "snake",
			"conejo":    "rabbit",
			"ratón":     "mouse",
			"tortuga":   "turtle",
		},
	},
	{
		name: "Familia",
		words: map[string]string{
			"madre":   "mother",
			"padre":   "father",
			"hermano": "brother",
			"hermana": "sister",
			"abuelo":  "grandfather",
			"abuela":  "grandmother",
			"tío":     "uncle",
			"tía":     "aunt",
			"primo":   "cousin",
			"prima":   "cousin",
			"hijo":    "son",
			"hija":    "daughter",
			"esposo":  "husband",
			"esposa":  "wife",
			"sobrino": "nephew",
			"sobrina": "niece",
		},
	},
	{
		name: "Colores",
		words: map[string]string{
			"rojo":     "red",
			"azul":     "blue",
			"verde":    "green",
			"amarillo": "yellow",
			"naranja":  "orange",
			"morado":   "purple",
			"rosa":     "pink",
			"blanco":   "white",
			"negro":    "black",
			"gris":     "gray",
			"marrón":   "brown",
			"celeste":  "light blue",
			"dorado":   "gold",
			"plateado": "silver",
		},
	},
	{
		name: "Números",
		words: map[string]string{
			"uno":       "one",
			"dos":       "two",
			"tres":      "three",
			"cuatro":    "four",
			"cinco":     "five",
			"seis":      "six",
			"siete":     "seven",
			"ocho":      "eight",
			"nueve":     "nine",
			"diez":      "ten",
			"once":      "eleven",
			"doce":      "twelve",
			"trece":     "thirteen",
			"catorce":   "fourteen",
			"quince":    "fifteen",
			"veinte":    "twenty",
			"cincuenta": "fifty",
			"cien":      "one hundred",
		},
	},
}
