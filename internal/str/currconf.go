//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool
	EMIterations  int
	LogLevel      int
	MinAssoc      float64
	PGLogin       PostgresLogin
	QuietStart    bool
	SelectK       int
	SQLiteFile    string
	TopicCounts   []int
	UsePostgres   bool
	WorkerCount   int
}

type PostgresLogin struct {
	Host   string
	Port   int
	User   string
	Pass   string
	DBName string
}
