//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/akratos/themestream/internal/assoc"
	"github.com/akratos/themestream/internal/corpus"
	"github.com/akratos/themestream/internal/lnch"
	"github.com/akratos/themestream/internal/mm"
	"github.com/akratos/themestream/internal/tm"
	"github.com/akratos/themestream/internal/tnet"
)

// injected at build time: 'go build -ldflags "-X main.GitCommit=$GIT_COMMIT -X main.BuildDate=$BUILD_DATE"'
var GitCommit string
var BuildDate string

func main() {
	const (
		MSG1 = "%d documents loaded across %d time windows"
		MSG2 = "fit failures: %d of %d requested models"
		MSG3 = "selected model K=%d; %d document-topic rows extracted"
		MSG4 = "%d associations retained at |rho| >= %.2f"
		MSG5 = "%d centrality rows and %d topology rows across windows"
	)

	lnch.GitCommit = GitCommit
	lnch.BuildDate = BuildDate

	lnch.ConfigAtLaunch()
	cfg := lnch.Config

	if !cfg.QuietStart {
		lnch.PrintVersion()
		lnch.PrintBuildInfo()
	}

	ctx := context.Background()
	start := time.Now()
	previous := time.Now()

	// [a] the corpus
	store := buildstore(ctx, cfg.UsePostgres)
	docs, err := store.LoadDocuments(ctx)
	lnch.Msg.EF(err, "main()")
	c := corpus.New(docs)
	lnch.Msg.Timer("A", fmt.Sprintf(MSG1, c.Len(), len(c.Windows())), start, previous)

	// [b] fit the candidate models, score them, pick one
	previous = time.Now()
	candidates := tm.Train(ctx, c, cfg.TopicCounts, tm.FitSettings{
		EMIterations: cfg.EMIterations,
		Init:         tm.InitSpectral,
		Workers:      cfg.WorkerCount,
	})
	if ff := candidates.Failures(); len(ff) > 0 {
		lnch.Msg.Emit(fmt.Sprintf(MSG2, len(ff), len(cfg.TopicCounts)), mm.MSGWARN)
	}
	tm.Evaluate(candidates, c)

	model, err := candidates.Select(cfg.SelectK)
	lnch.Msg.EF(err, "main()")

	doctopics := tm.DocTopicTable(model)
	lnch.Msg.Timer("B", fmt.Sprintf(MSG3, model.K, len(doctopics)), start, previous)

	// [c] per-window topic associations
	previous = time.Now()
	edges, err := assoc.Associate(doctopics, cfg.MinAssoc)
	lnch.Msg.Error(err)
	lnch.Msg.Emit(fmt.Sprintf(MSG4, len(edges), cfg.MinAssoc), mm.MSGNOTE)

	// [d] the temporal network and its two longitudinal tables
	prevalence := tnet.PrevalenceFromDocTopics(doctopics)
	centrality, topology := tnet.Build(prevalence, edges)
	lnch.Msg.Timer("C", fmt.Sprintf(MSG5, len(centrality), len(topology)), start, previous)
}

// buildstore - sqlite unless a postgres login was supplied
func buildstore(ctx context.Context, usepg bool) corpus.Store {
	cfg := lnch.Config

	if usepg {
		pg, err := corpus.FillPGPool(ctx, cfg.PGLogin, cfg.WorkerCount)
		lnch.Msg.EF(err, "buildstore()")
		return pg
	}

	sl, err := corpus.OpenSQLite(cfg.SQLiteFile)
	lnch.Msg.EF(err, "buildstore()")
	return sl
}
