package services

import (
	"fmt"
	"strings"

	"github.com/vvka-141/tabload/internal/files/filesystem"
	"github.com/vvka-141/tabload/internal/files/scanner"
	"github.com/vvka-141/tabload/internal/reader"
)

// newFixtureFS builds the sample data tree:
//
//	/data/single/employees.csv          10 rows x 6 columns
//	/data/consistent/sales_q{1,2,3}.csv  3 x (10 rows x 6 columns)
//	/data/inconsistent/customers_{1,2,3}.csv  8, 8 and 5 columns
//	/data/nested/{top.csv, sub/deeper.csv}
//	/data/empty/ and /data/broken/ (unparseable files only)
func newFixtureFS() *filesystem.MemoryFileSystem {
	fs := filesystem.NewMemoryFileSystem("/data")

	var b strings.Builder
	b.WriteString("id,name,age,department,salary,city\n")
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&b, "%d,Employee %d,%d,Dept %d,%d,City %d\n", i, i, 25+i, i%3, 50000+i*1000, i%4)
	}
	fs.AddFile("single/employees.csv", b.String())

	for q := 1; q <= 3; q++ {
		fs.AddFile(fmt.Sprintf("consistent/sales_q%d.csv", q), salesCSV(q))
	}

	fs.AddFile("inconsistent/customers_1.csv", customersCSV(1001, true))
	fs.AddFile("inconsistent/customers_2.csv", customersCSV(2001, true))
	fs.AddFile("inconsistent/customers_3.csv", customersCSV(3001, false))
	fs.AddFile("inconsistent/readme.txt", "not data")

	fs.AddFile("nested/top.csv", salesCSV(1))
	fs.AddFile("nested/sub/deeper.csv", salesCSV(2))

	fs.AddDir("empty")
	fs.AddFile("broken/bad.csv", "")
	fs.AddFile("broken/bad.xlsx", "not a workbook")

	return fs
}

func salesCSV(quarter int) string {
	var b strings.Builder
	b.WriteString("product_id,product_name,category,price,quantity_sold,quarter\n")
	start := quarter*100 + 1
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "%d,Product %d,Cat %d,%.2f,%d,Q%d\n", start+i, start+i, i%3, 99.99+float64(i), 50+i, quarter)
	}
	return b.String()
}

func customersCSV(start int, full bool) string {
	var b strings.Builder
	if full {
		b.WriteString("customer_id,first_name,last_name,email,phone,address,city,country\n")
	} else {
		b.WriteString("customer_id,first_name,last_name,email,phone\n")
	}
	for i := start; i < start+10; i++ {
		fmt.Fprintf(&b, "%d,First%d,Last%d,customer%d@email.com,555-%04d", i, i, i, i, i)
		if full {
			fmt.Fprintf(&b, ",%d Main St,City %d,Country", i, i%5)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func newFixtureLoader() (*Loader, *recordingLogger) {
	fs := newFixtureFS()
	logger := &recordingLogger{}
	return NewLoader(fs, scanner.NewScannerWithFS(fs), reader.NewReaderWithFS(fs), logger), logger
}
