package entity

// SearchEngine is a named query template; "%s" marks where the escaped
// query goes.
type SearchEngine struct {
	Name     string `json:"name" mapstructure:"name" toml:"name"`
	Template string `json:"template" mapstructure:"template" toml:"template"`
}

// DefaultSearchEngines is the built-in engine list, Google first.
func DefaultSearchEngines() []SearchEngine {
	return []SearchEngine{
		{Name: "Google", Template: "https://www.google.com/search?q=%s"},
		{Name: "Bing", Template: "https://www.bing.com/search?q=%s"},
		{Name: "Baidu", Template: "https://www.baidu.com/s?wd=%s"},
		{Name: "DuckDuckGo", Template: "https://duckduckgo.com/?q=%s"},
		{Name: "Yahoo", Template: "https://search.yahoo.com/search?p=%s"},
		{Name: "Sogou", Template: "https://www.sogou.com/web?query=%s"},
	}
}
