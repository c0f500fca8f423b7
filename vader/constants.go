package vader

const (
	//(empirically derived mean sentiment intensity rating increase for booster words)
	B_INCR = 0.293
	B_DECR = -0.293

	//(empirically derived mean sentiment intensity rating increase for using ALLCAPs to emphasize a word)
	C_INCR   = 0.733
	N_SCALAR = -0.74

	//(empirically derived mean sentiment intensity rating increase for exclamation points and question marks)
	EM_INCR     = 0.292
	QM_INCR     = 0.18
	MAX_EM      = 4
	MAX_QM      = 3
	MAX_QM_INCR = 0.96

	// "never so/this" reads as an intensifier, not a negation
	NeverIncr = 1.25

	// contrastive conjunction weights
	ButBefore = 0.5
	ButAfter  = 1.5

	Alpha     = 15   //constant for normalize
	IncludeNt = true //flag to check "n't" in negated
)

// Punctuation stripped from the edges of word tokens.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Scalar dampening of a booster by its distance from the sentiment word.
// Index is the distance, slot 0 is unused.
var distanceDamping = [...]float64{0, 1.0, 0.95, 0.9}

var Negations = newKeySet("aint", "arent", "cannot", "cant", "couldnt", "darent", "didnt", "doesnt",
	"ain't", "aren't", "can't", "couldn't", "daren't", "didn't", "doesn't",
	"dont", "hadnt", "hasnt", "havent", "isnt", "mightnt", "mustnt", "neither",
	"don't", "hadn't", "hasn't", "haven't", "isn't", "mightn't", "mustn't",
	"neednt", "needn't", "never", "none", "nope", "nor", "not", "nothing", "nowhere",
	"oughtnt", "shant", "shouldnt", "uhuh", "wasnt", "werent",
	"oughtn't", "shan't", "shouldn't", "uh-uh", "wasn't", "weren't",
	"without", "wont", "wouldnt", "won't", "wouldn't", "rarely", "seldom", "despite")

// booster/dampener 'intensifiers' or 'degree adverbs'
// http://en.wiktionary.org/wiki/Category:English_degree_adverbs
var BoosterMap = map[Key]float64{"absolutely": B_INCR, "amazingly": B_INCR, "awfully": B_INCR, "completely": B_INCR,
	"considerably": B_INCR, "decidedly": B_INCR, "deeply": B_INCR, "effing": B_INCR, "enormously": B_INCR,
	"entirely": B_INCR, "especially": B_INCR, "exceptionally": B_INCR, "extremely": B_INCR, "fabulously": B_INCR,
	"flipping": B_INCR, "flippin": B_INCR, "fricking": B_INCR, "frickin": B_INCR, "frigging": B_INCR, "friggin": B_INCR,
	"fully": B_INCR, "fucking": B_INCR, "greatly": B_INCR, "hella": B_INCR, "highly": B_INCR, "hugely": B_INCR,
	"incredibly": B_INCR, "intensely": B_INCR, "majorly": B_INCR, "more": B_INCR, "most": B_INCR, "particularly": B_INCR,
	"purely": B_INCR, "quite": B_INCR, "really": B_INCR, "remarkably": B_INCR, "so": B_INCR, "substantially": B_INCR,
	"thoroughly": B_INCR, "totally": B_INCR, "tremendously": B_INCR, "uber": B_INCR,
	"unbelievably": B_INCR, "unusually": B_INCR, "utterly": B_INCR, "very": B_INCR, "almost": B_DECR,
	"barely": B_DECR, "hardly": B_DECR, "just enough": B_DECR, "kind of": B_DECR, "kinda": B_DECR, "kindof": B_DECR,
	"kind-of": B_DECR, "less": B_DECR, "little": B_DECR, "marginally": B_DECR, "occasionally": B_DECR, "partly": B_DECR,
	"scarcely": B_DECR, "slightly": B_DECR, "somewhat": B_DECR, "sort of": B_DECR, "sorta": B_DECR, "sortof": B_DECR, "sort-of": B_DECR,
}

// Idiom is a fixed phrase whose valence replaces the computed one.
type Idiom struct {
	Phrase  Key
	Valence float64
}

// special case idioms containing lexicon words, checked in order
var SpecialCaseIdioms = []Idiom{
	{"the shit", 3},
	{"the bomb", 3},
	{"bad ass", 1.5},
	{"yeah right", -2},
	{"kiss of death", -1.5},
}

// multi-word booster phrases, sorted, for the distance-3 n-gram scan.
// Single-word boosters are left out of that scan: the distance scalars have
// already applied them.
var multiWordBoosters = phrasesWithSpace(BoosterMap)
