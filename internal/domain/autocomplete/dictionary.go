package autocomplete

import (
	"slices"
	"strings"
)

// MinPrefixScanLength is the shortest input that triggers a prefix scan or
// a synthesized ".com" completion.
const MinPrefixScanLength = 3

// quickDomains maps shorthand keywords to hosts. Read-only after init.
var quickDomains = map[string]string{
	"goog":          "www.google.com",
	"google":        "www.google.com",
	"youtu":         "www.youtube.com",
	"youtube":       "www.youtube.com",
	"face":          "www.facebook.com",
	"facebook":      "www.facebook.com",
	"twit":          "www.twitter.com",
	"twitter":       "www.twitter.com",
	"insta":         "www.instagram.com",
	"instagram":     "www.instagram.com",
	"redd":          "www.reddit.com",
	"reddit":        "www.reddit.com",
	"wiki":          "www.wikipedia.org",
	"wikipedia":     "www.wikipedia.org",
	"amaz":          "www.amazon.com",
	"amazon":        "www.amazon.com",
	"netfl":         "www.netflix.com",
	"netflix":       "www.netflix.com",
	"gith":          "www.github.com",
	"github":        "www.github.com",
	"stack":         "stackoverflow.com",
	"stackoverflow": "stackoverflow.com",
	"bai":           "www.baidu.com",
	"baidu":         "www.baidu.com",
	"tao":           "www.taobao.com",
	"taobao":        "www.taobao.com",
	"jd":            "www.jd.com",
	"jingdong":      "www.jd.com",
	"weib":          "www.weibo.com",
	"weibo":         "www.weibo.com",
	"zhi":           "www.zhihu.com",
	"zhihu":         "www.zhihu.com",
	"bili":          "www.bilibili.com",
	"bilibili":      "www.bilibili.com",
	"douy":          "www.douyin.com",
	"douyin":        "www.douyin.com",
	"tik":           "www.tiktok.com",
	"tiktok":        "www.tiktok.com",
}

// sortedKeys fixes prefix-scan order so completion is deterministic.
var sortedKeys = func() []string {
	keys := make([]string, 0, len(quickDomains))
	for k := range quickDomains {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}()

// Complete maps a prefix to a full URL. Exact keyword matches win; a prefix
// scan in alphabetical key order runs for inputs of three or more
// characters; otherwise a dotless, spaceless input of three or more
// characters becomes https://www.<input>.com.
func Complete(prefix string) (string, bool) {
	input := strings.ToLower(strings.TrimSpace(prefix))
	if input == "" {
		return "", false
	}

	if host, ok := quickDomains[input]; ok {
		return "https://" + host, true
	}
	if len(input) < MinPrefixScanLength {
		return "", false
	}

	for _, key := range sortedKeys {
		if strings.HasPrefix(key, input) {
			return "https://" + quickDomains[key], true
		}
	}

	if !strings.ContainsAny(input, ". \t") {
		return "https://www." + input + ".com", true
	}
	return "", false
}
