package highscore_test

import (
	"fmt"

	"github.com/katalvlaran/minesweeper/highscore"
)

// ExampleInsert ranks a new time between two existing ones and prints the
// table the way the highscore panel does.
func ExampleInsert() {
	table := []highscore.Entry{{Name: "AAA", Seconds: 50}, {Name: "BBB", Seconds: 80}}

	table, ok := highscore.Insert(table, highscore.Entry{Name: "CCC", Seconds: 60})
	fmt.Println("entered:", ok)
	for i, e := range table {
		fmt.Println(e.Line(i + 1))
	}
	// Output:
	// entered: true
	// 01:......AAA......050
	// 02:......CCC......060
	// 03:......BBB......080
}
