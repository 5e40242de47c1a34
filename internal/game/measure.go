package game

type Measure struct {
	Tick  int  // The time the bar line passes the judgement line
	First bool // Starts a new timing segment
}
