package matrix_test

import (
	"fmt"

	"github.com/andresbrocco/balanced-sequence-generator/matrix"
)

// ExampleNewRandom builds a 3×3 transition matrix from a stub random
// stream that always yields 0.5, making the layout fully predictable:
// every off-diagonal cell is 0.5 and the diagonal is exactly zero.
func ExampleNewRandom() {
	m, err := matrix.NewRandom(3, halfRand())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(m)
	// Output:
	// [0, 0.5, 0.5]
	// [0.5, 0, 0.5]
	// [0.5, 0.5, 0]
}

// ExampleDense_Reinforce shows the cooldown mechanism: a used transition
// jumps to the next integer tier plus a fresh random, so it stops being
// the row minimum until its neighbors catch up.
func ExampleDense_Reinforce() {
	m, _ := matrix.NewRandom(3, halfRand()) // all off-diagonal cells at 0.5

	r, c, _ := m.ArgMinOffDiag() // ties resolve row-major: (0,1)
	fmt.Println("picked:", r, c)

	_ = m.Reinforce(r, c, halfRand()) // ceil(0.5) + 0.5 == 1.5
	v, _ := m.At(r, c)
	fmt.Println("after cooldown:", v)

	col, _ := m.RowArgMinOffDiag(0) // (0,1) is now hot; (0,2) wins
	fmt.Println("next from row 0:", col)
	// Output:
	// picked: 0 1
	// after cooldown: 1.5
	// next from row 0: 2
}
