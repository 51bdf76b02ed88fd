// Package i18n provides locale-aware string lookup backed by a flat translation
// catalog.
//
// A catalog is a single JSON or YAML document mapping locale codes to
// translation tables:
//
//	{
//		"en":    {"hello": "Hi", "bye": "Bye"},
//		"en_GB": {"hello": "Hiya"},
//		"ja":    {"hello": "こんにちは"}
//	}
//
// # Basic Usage
//
// Create a Store, load a locale, and translate keys:
//
//	store, err := i18n.NewStore(
//		i18n.WithCatalogFile("translation.json"),
//		i18n.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	store.Load("en_GB")
//	store.T("hello") // "Hiya"
//	store.T("bye")   // "Bye" (from the base language)
//	store.T("nope")  // "nope" (unknown keys fall back to themselves)
//
// # Locale Resolution
//
// Load always starts from the base language (the part before "_"). A regional
// locale such as "en_GB" then overrides the base entries with its own. When the
// base language alone is requested ("en"), all of its regional variants are
// merged on top in lexicographic order of locale code.
//
// The catalog is read fresh on every Load. If it is missing or malformed the
// failure is logged and the active table becomes empty, so T returns keys
// unchanged until a later Load succeeds.
//
// # Embedded Catalogs
//
//	//go:embed translation.json
//	var catalogFS embed.FS
//
//	store, _ := i18n.NewStore(i18n.WithCatalogFS(catalogFS, "translation.json"))
//
// # Placeholders
//
// Tf replaces {{name}} placeholders after lookup:
//
//	store.Tf("welcome", i18n.M{"name": "Ann"}) // "Welcome, Ann!"
//
// # Thread Safety
//
// Load swaps the active table atomically, so T may be called from any goroutine.
package i18n
