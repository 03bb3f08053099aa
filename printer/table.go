package printer

import (
	"fmt"
	"math/big"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// FactorTable renders a complete prime factorization as a table of primes and
// their multiplicities.
func FactorTable(n *big.Int, primes []*big.Int) {
	tbl := newTable()
	for _, row := range groupFactors(primes) {
		tbl.AddRow(row.prime.String(), row.exponent)
	}
	fmt.Printf("Prime factorization of %s:\n", n)
	tbl.Print()
}

func newTable() table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Prime", "Exponent")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	return tbl
}

type factorRow struct {
	prime    *big.Int
	exponent int
}

// groupFactors collapses a sorted prime list into (prime, exponent) rows.
func groupFactors(primes []*big.Int) []factorRow {
	var rows []factorRow
	for _, p := range primes {
		if len(rows) > 0 && rows[len(rows)-1].prime.Cmp(p) == 0 {
			rows[len(rows)-1].exponent++
			continue
		}
		rows = append(rows, factorRow{prime: p, exponent: 1})
	}
	return rows
}
