package repository

import (
	"encoding/json"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// marshalGenres encodes genre tags for storage in a JSON column.
// A nil slice is stored as an empty array rather than SQL NULL so
// reads always yield a list.
func marshalGenres(genres []string) ([]byte, error) {
	if genres == nil {
		genres = []string{}
	}
	return json.Marshal(genres)
}

// unmarshalGenres decodes the genres JSON column. NULL and empty
// values decode to an empty list.
func unmarshalGenres(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var genres []string
	if err := json.Unmarshal(raw, &genres); err != nil {
		return nil, err
	}
	if genres == nil {
		genres = []string{}
	}
	return genres, nil
}

// isDuplicateEntry reports whether err is a MySQL duplicate-key error
// (error 1062), i.e. a unique constraint such as
// uq_availabilities_artist_id_date was violated.
func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
