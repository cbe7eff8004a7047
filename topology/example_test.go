package topology_test

import (
	"fmt"

	"github.com/katalvlaran/fakebackend/topology"
)

// ExampleGenerate prints the default 10-qubit layout and its statistics.
func ExampleGenerate() {
	cm, err := topology.Generate(10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cm.Pairs())

	st, _ := topology.Analyze(cm, 10)
	fmt.Printf("edges=%d maxDegree=%d connected=%t\n", st.Edges, st.MaxDegree, st.Connected)
	// Output:
	// [[0 1] [1 2] [2 3] [0 4] [2 6] [4 5] [5 6] [6 7] [5 9] [8 9]]
	// edges=10 maxDegree=3 connected=true
}
