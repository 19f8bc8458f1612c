//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/akratos/themestream/internal/mm"
	"github.com/akratos/themestream/internal/str"
	"github.com/akratos/themestream/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
)

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL6 = "Could not find '%s'. A valid config file looks like:\n%s"
		FAIL5 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
	)

	Config = BuildDefaultConfig()

	// look in the cwd first, then in the home config directory
	uh, _ := os.UserHomeDir()
	locations := []string{
		fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGNAME),
		fmt.Sprintf(vv.CONFIGALTAPTH, uh) + vv.CONFIGNAME,
	}

	cfgfile := ""
	var loadedcfg *os.File
	for _, loc := range locations {
		f, e := os.Open(loc)
		if e == nil {
			cfgfile = loc
			loadedcfg = f
			break
		}
	}

	if loadedcfg != nil {
		decoderc := json.NewDecoder(loadedcfg)
		confc := str.CurrentConfiguration{}
		errc := decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = &confc
			Msg.Emit(fmt.Sprintf("'%s' loaded", cfgfile), mm.MSGTMI)
		} else {
			Msg.Emit(fmt.Sprintf(FAIL3, cfgfile), mm.MSGPEEK)
		}
	} else {
		example, _ := json.MarshalIndent(BuildDefaultConfig(), "", vv.JSONINDENT)
		Msg.Emit(fmt.Sprintf(FAIL6, locations[1], string(example)), mm.MSGPEEK)
	}

	applyflags(os.Args[1:])

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.Emit(fmt.Sprintf(FAIL5, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()), mm.MSGWARN)
		Config.WorkerCount = runtime.NumCPU()
	}

	Msg.BW = Config.BlackAndWhite
	Msg.LLvl = Config.LogLevel
}

// applyflags - let the command line override the loaded configuration
func applyflags(args []string) {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"themestreamDB\" ,\"User\": \"themestream\"}"`
		FAIL4 = "Improperly formatted topic count list '%s'. Using: %v"
		FAIL7 = "'%s' requires a value; flag skipped"
	)

	// a value-taking flag at the very end of the line has nothing to consume
	after := func(i int) (string, bool) {
		if i+1 < len(args) {
			return args[i+1], true
		}
		Msg.Emit(fmt.Sprintf(FAIL7, args[i]), mm.MSGCRIT)
		return "", false
	}

	for i, a := range args {
		v, ok := "", false
		switch a {
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(1)
		case "-bw":
			Config.BlackAndWhite = true
		case "-db":
			if v, ok = after(i); ok {
				Config.SQLiteFile = v
			}
		case "-em":
			if v, ok = after(i); ok {
				em, err := strconv.Atoi(v)
				Msg.EF(err, "applyflags()")
				Config.EMIterations = em
			}
		case "-gl":
			if v, ok = after(i); ok {
				ll, err := strconv.Atoi(v)
				Msg.EF(err, "applyflags()")
				Config.LogLevel = ll
			}
		case "-k":
			if v, ok = after(i); ok {
				kk, err := parsetopiccounts(v)
				if err != nil {
					Msg.Emit(fmt.Sprintf(FAIL4, v, vv.DEFAULTTOPICCOUNTS), mm.MSGCRIT)
				} else {
					Config.TopicCounts = kk
				}
			}
		case "-ma":
			if v, ok = after(i); ok {
				ma, err := strconv.ParseFloat(v, 64)
				Msg.EF(err, "applyflags()")
				Config.MinAssoc = ma
			}
		case "-pg":
			if v, ok = after(i); ok {
				var pl str.PostgresLogin
				err := json.Unmarshal([]byte(v), &pl)
				if err != nil {
					Msg.Emit(FAIL1, mm.MSGMAND)
					Msg.Emit(FAIL2, mm.MSGCRIT)
				}
				Config.PGLogin = pl
				Config.UsePostgres = true
			}
		case "-q":
			Config.QuietStart = true
		case "-sk":
			if v, ok = after(i); ok {
				sk, err := strconv.Atoi(v)
				Msg.EF(err, "applyflags()")
				Config.SelectK = sk
			}
		case "-wc":
			if v, ok = after(i); ok {
				wc, err := strconv.Atoi(v)
				Msg.EF(err, "applyflags()")
				Config.WorkerCount = wc
			}
		default:
			// do nothing
		}
	}
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = false
	c.EMIterations = vv.DEFAULTEMITERATIONS
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.MinAssoc = vv.DEFAULTMINASSOC
	c.QuietStart = false
	c.SelectK = vv.DEFAULTTOPICCOUNTS[len(vv.DEFAULTTOPICCOUNTS)/2]
	c.SQLiteFile = vv.DEFAULTSQLITEFILE
	c.TopicCounts = vv.DEFAULTTOPICCOUNTS
	c.UsePostgres = false
	c.WorkerCount = runtime.NumCPU()

	pl := str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	c.PGLogin = pl

	return &c
}

// parsetopiccounts - "5,10,15" into []int{5, 10, 15}
func parsetopiccounts(arg string) ([]int, error) {
	pieces := strings.Split(arg, ",")
	kk := make([]int, 0, len(pieces))
	for _, p := range pieces {
		k, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		kk = append(kk, k)
	}
	return kk, nil
}
