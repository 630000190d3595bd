package entity

import (
	"strings"

	"github.com/bnema/omnitab/internal/domain/url"
)

// TabCategory is the closed set of tab classifications.
type TabCategory string

const (
	CategoryVideo       TabCategory = "video"
	CategoryDevelopment TabCategory = "development"
	CategoryNews        TabCategory = "news"
	CategoryShopping    TabCategory = "shopping"
	CategorySocial      TabCategory = "social"
	CategoryDefault     TabCategory = "default"
)

// AllCategories lists categories in rule priority order, default last.
var AllCategories = []TabCategory{
	CategoryVideo,
	CategoryDevelopment,
	CategoryNews,
	CategoryShopping,
	CategorySocial,
	CategoryDefault,
}

type categoryRule struct {
	category TabCategory
	needles  []string
}

// Evaluated in order; first hit wins.
var categoryRules = []categoryRule{
	{CategoryVideo, []string{"youtube", "youtu.be", "bilibili", "vimeo", "netflix", "twitch", "youku", "iqiyi", "douyin", "tiktok", "dailymotion"}},
	{CategoryDevelopment, []string{"github", "gitlab", "bitbucket", "stackoverflow", "stackexchange", "csdn", "go.dev", "npmjs", "pkg.go"}},
	{CategoryNews, []string{"news", "bbc", "cnn", "reuters", "nytimes", "theguardian", "sina", "163.com"}},
	{CategoryShopping, []string{"amazon", "taobao", "tmall", "jd.com", "ebay", "aliexpress", "etsy", "shop"}},
	{CategorySocial, []string{"facebook", "twitter", "instagram", "reddit", "weibo", "zhihu", "linkedin", "mastodon"}},
}

// CategorizeHost classifies a host by ordered substring rules.
func CategorizeHost(host string) TabCategory {
	host = strings.ToLower(host)
	if host == "" {
		return CategoryDefault
	}
	for _, rule := range categoryRules {
		for _, needle := range rule.needles {
			if strings.Contains(host, needle) {
				return rule.category
			}
		}
	}
	return CategoryDefault
}

// CategorizeURL classifies the host of rawURL.
func CategorizeURL(rawURL string) TabCategory {
	return CategorizeHost(url.ExtractDomain(rawURL))
}
