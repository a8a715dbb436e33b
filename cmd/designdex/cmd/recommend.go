package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/aesthetic"
	"github.com/kailas-cloud/designdex/internal/usecase/recommend"
)

var (
	recProduct  string
	recIndustry string
	recKeywords []string
	recPlatform string
	recSeed     int64
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a design system",
	Long: "Composes product, style, color, typography, and UX searches with an " +
		"aesthetic direction and a platform stack hint into one recommendation.",
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recProduct, "product", "", "Product type (SaaS, E-commerce, Portfolio, Dashboard)")
	recommendCmd.Flags().StringVar(&recIndustry, "industry", "", "Industry (Fintech, Healthcare, Education, Gaming)")
	recommendCmd.Flags().StringSliceVar(&recKeywords, "keywords", nil, "Style keywords (first three are used)")
	recommendCmd.Flags().StringVar(&recPlatform, "platform", "web", "Target platform (web, mobile, desktop)")
	recommendCmd.Flags().Int64Var(&recSeed, "seed", 0, "Aesthetic generator seed (0 = random)")
	_ = recommendCmd.MarkFlagRequired("product")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	composer := recommend.New(newLocalEngine(), aesthetic.New(recSeed), zap.NewNop())

	rec := composer.Recommend(cmd.Context(), recommend.Input{
		ProductType: recProduct,
		Industry:    recIndustry,
		Keywords:    recKeywords,
		Platform:    recPlatform,
	})
	return printJSON(rec)
}
