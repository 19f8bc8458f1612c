//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "Themestream"
	SHORTNAME = "TS"
	VERSION   = "0.1.2"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGNAME     = "ts-conf.json"

	DEFAULTEMITERATIONS = 75
	DEFAULTGOLOGLEVEL   = 0
	DEFAULTMINASSOC     = 0.5
	DEFAULTPSQLHOST     = "127.0.0.1"
	DEFAULTPSQLUSER     = "themestream"
	DEFAULTPSQLPORT     = 5432
	DEFAULTPSQLDB       = "themestreamDB"
	DEFAULTSQLITEFILE   = "ts-documents.db"

	JSONINDENT = "  "

	// the top-M vocabulary words considered when scoring a topic
	EVALTOPWORDS = 10

	// fewest documents a time window needs before correlations are attempted
	MINDOCSPERWINDOW = 3
)

// DEFAULTTOPICCOUNTS - the candidate model complexities fitted when the caller does not supply a sequence
var DEFAULTTOPICCOUNTS = []int{5, 10, 15, 20}
