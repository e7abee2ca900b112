package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "economyquiz"

	quizServiceName = "quiz"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuizItemKey is the key holding a single quiz, e.g. economyquiz:quiz:item:42.
func QuizItemKey(id int64) string {
	return GenerateCacheKey(quizServiceName, "item", strconv.FormatInt(id, 10))
}

// CategoriesKey is the key holding the distinct category list.
func CategoriesKey() string {
	return GenerateCacheKey(quizServiceName, "categories", "all")
}
