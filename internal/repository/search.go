package repository

import (
	"strings"

	"github.com/shramik/admin-backend/internal/model"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into a LIKE pattern that matches it
// literally anywhere in the column. Postgres escapes with '\' by default.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// phonePattern matches stored phone numbers against the normalized form of
// term. A term without digits yields "", which no stored phone matches.
func phonePattern(term string) string {
	phone := model.NormalizePhone(term)
	if phone == "" {
		return ""
	}
	return containsPattern(phone)
}
