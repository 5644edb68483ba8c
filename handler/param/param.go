package param

import (
	"net/http"

	"github.com/gorilla/schema"
	"github.com/spf13/cast"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("json")
}

// Binding decode query/form params into v by json tag
func Binding(r *http.Request, v interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	return decoder.Decode(v, r.Form)
}

// Int read an int param with a fallback
func Int(r *http.Request, key string, fallback int) int {
	if s := r.FormValue(key); s != "" {
		return cast.ToInt(s)
	}

	return fallback
}
