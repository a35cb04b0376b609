package narrative

var openingLines = []string{
	"This is a knife-edge finish.",
	"The pressure is absolutely immense right now.",
	"All eyes are on the middle — this is what cricket is made of.",
	"The crowd is on its feet. Every delivery could be the last.",
	"We're in the business end of this match, and nerves will decide it.",
}

var closingLines = []string{
	"Experience and composure will be the deciding factors.",
	"Expect fireworks — or heartbreak — in these final moments.",
	"History is waiting to be written on this pitch.",
	"Cricket's magic lives in exactly these moments.",
	"One moment of brilliance could change everything.",
}

const (
	highPressureLine = "The high-stakes nature of this game amplifies every error — a misfield, a dropped catch, or a wide could swing the momentum catastrophically."
	momentumLine     = "Momentum is firmly with the batting side right now. A batter in this kind of form can make the required rate feel irrelevant — momentum is its own weapon."

	collapseTailLine  = "A late-order collapse has already exposed the tail, and the pressure on the last pair will be immense."
	lastWicketLine    = "The last wicket partnership is a volatile commodity — one good delivery ends it all."
	runsContextFormat = "With %d runs on the board, the context of the match defines everything — pitch conditions, match format, and batting depth all play critical roles."
)
