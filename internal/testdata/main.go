package testdata

import (
	"strings"

	"git.lost.host/meutraa/arcview/internal/game"
	"git.lost.host/meutraa/arcview/internal/parser"
)

// Chart is a short chart using every note kind, two tempo changes and an
// arc carrying arctaps, written out of tick order on purpose.
const Chart = `AudioOffset:248
-
timing(0,126.00,4.00);
(1905,1);
(2381,4);
hold(2857,3810,2);
arc(3810,4762,0.00,1.00,s,1.00,1.00,0,none,false);
arc(4762,5714,1.00,0.00,b,1.00,0.00,1,none,false);
arc(5714,6667,0.00,0.50,si,0.00,1.00,0,none,true)[arctap(6190),arctap(6667)];
(6190,2);
timing(6667,252.00,4.00);
(7143,3);
(6905,1);
hold(7619,8571,4);
arc(8571,9524,-0.50,1.50,siso,0.00,0.50,1,none,true)[arctap(9048)];
timing(9524,126.00,4.00);
(9524,2);
`

func GetChart() (*game.Beatmap, error) {
	p := &parser.DefaultParser{}
	return p.Parse(strings.NewReader(Chart))
}
