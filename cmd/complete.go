package cmd

import (
	"slices"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes wlt subcommands and flags for shell completion.
func Completion() *complete.Command {
	categories := complete.PredictFunc(predictCategories)
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"f":        predict.Files("*"),
			"currency": predict.Set{"EUR", "GBP", "RUB", "USD"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"shell":   {},
			"balance": {},
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Something,
				"c": categories,
				"a": predict.Something,
				"m": predict.Something,
			}},
			"find": {Flags: map[string]complete.Predictor{
				"d": predict.Something,
				"c": categories,
				"a": predict.Something,
			}},
			"fmt":    {},
			"export": {},
			"query":  {Args: predict.Something},
			"topic":  {Args: predict.Set(docs.GetAllTopics())},
			"help":   {},
		},
	}
}

// predictCategories suggests the income and expense labels, and the categories
// already used in the record file. Completion runs before flags are parsed,
// only the environment is taken into account.
func predictCategories(string) []string {
	categories := []string{wallet.Income, wallet.Expense}
	w, err := wallet.New(wallet.NewRecorder(getEnv(EnvFile, DefaultFile)))
	if err != nil {
		return categories
	}
	for _, c := range w.Categories() {
		if !slices.Contains(categories, c) {
			categories = append(categories, c)
		}
	}
	return categories
}
