package cmd

import (
	"github.com/etnz/analyzer"
	"github.com/etnz/analyzer/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	sortKeys := predict.Set(analyzer.SortKeyNames())
	all, _ := docs.GetAllTopics()
	topics := predict.Set(append(all, "*"))
	source := map[string]complete.Predictor{
		"in":   predict.Files("*.json"),
		"path": predict.Something,
		"csv":  predict.Files("*.csv"),
	}
	view := map[string]complete.Predictor{
		"q":    predict.Something,
		"sort": sortKeys,
		"desc": predict.Nothing,
	}
	merge := func(maps ...map[string]complete.Predictor) map[string]complete.Predictor {
		res := map[string]complete.Predictor{}
		for _, m := range maps {
			for k, v := range m {
				res[k] = v
			}
		}
		return res
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.toml"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"raw":       predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"demo":     {},
			"analyze":  {Flags: map[string]complete.Predictor{"f": predict.Files("*.xls*")}},
			"holdings": {Flags: merge(source, view)},
			"export": {Flags: merge(source, view, map[string]complete.Predictor{
				"o": predict.Files("*.csv"),
			})},
			"charts": {Flags: merge(source, map[string]complete.Predictor{
				"o": predict.Dirs("*"),
			})},
			"sample": {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"shell":  {},
			"topic":  {Args: topics},
		},
	}
}
