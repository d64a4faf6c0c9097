package id

import "github.com/google/uuid"

// dynamicPrefix marks questions that exist only inside one quiz.
const dynamicPrefix = "dynamic_"

// GenerateID returns a new random identifier for persisted entities.
func GenerateID() string {
	return uuid.NewString()
}

// GenerateDynamicID returns a synthetic identifier for a generated question.
func GenerateDynamicID() string {
	return dynamicPrefix + uuid.NewString()
}

// IsDynamic reports whether id was produced by GenerateDynamicID.
func IsDynamic(id string) bool {
	return len(id) > len(dynamicPrefix) && id[:len(dynamicPrefix)] == dynamicPrefix
}
