// Package shopassist provides an embeddable Go client for the shopassist
// recommendation pipeline over the built-in product catalog.
//
// Matching is deterministic and works offline:
//
//	client, _ := shopassist.New()
//	res := client.Match("jackets for women", "en")
//	for _, p := range res.Products {
//	    fmt.Println(p.ID, p.Name)
//	}
//
// Non-English queries need a translator; without one they are matched as-is:
//
//	client, _ := shopassist.New(
//	    shopassist.WithTranslator(myTranslator),
//	    shopassist.WithTranslateTimeout(5*time.Second),
//	    shopassist.WithPrometheus(prometheus.DefaultRegisterer),
//	)
//	rec, err := client.Recommend(ctx, "মেয়েদের জন্য টি-শার্ট", "bn")
package shopassist
