// Package sdk provides a Go client for the designdex design asset
// search service.
//
//	client := sdk.New("http://localhost:8080", sdk.WithAPIKey("secret"))
//
//	resp, _ := client.Search(ctx, sdk.SearchRequest{
//	    Domain: "color",
//	    Query:  "calm corporate",
//	    Limit:  5,
//	})
//	for _, r := range resp.Results {
//	    fmt.Println(r.Field("name"), r.Score())
//	}
//
//	rec, _ := client.Recommend(ctx, sdk.RecommendRequest{
//	    ProductType: "SaaS",
//	    Industry:    "Fintech",
//	    Keywords:    []string{"minimal", "calm", "trustworthy"},
//	    Platform:    "web",
//	})
//	fmt.Println(rec.Aesthetic.Name, rec.Stack.DefaultFramework)
package sdk
