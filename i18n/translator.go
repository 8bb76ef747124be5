package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "max" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "必須の値がありません"
		case "invalid_type":
			if want := data["want"]; want != "" {
				return want + " を指定してください"
			}
			return "型が不正です"
		case "empty_string":
			return "空文字列は指定できません"
		case "too_long":
			if max := data["max"]; max != "" {
				return "長すぎます (上限 " + max + ", 実際 " + data["got"] + ")"
			}
			return "長すぎます"
		case "not_integer":
			return "整数を指定してください"
		case "out_of_range":
			return "範囲外です (0 から 16777215 まで)"
		case "invalid_scheme":
			return "URL は http:// または https:// で始まる必要があります"
		case "invalid_inject":
			return "inject にはソース名か source 付きのマッピングを指定してください"
		case "unknown_source":
			return "未知の inject ソースです: " + data["name"]
		}
	default: // "en"
		switch code {
		case "required":
			return "required value missing"
		case "invalid_type":
			if want := data["want"]; want != "" {
				return "expected " + want
			}
			return "invalid type"
		case "empty_string":
			return "must not be empty"
		case "too_long":
			if max := data["max"]; max != "" {
				return "must be at most " + max + " long (got " + data["got"] + ")"
			}
			return "too long"
		case "not_integer":
			return "must be a whole number"
		case "out_of_range":
			return "must be between 0 and 16777215"
		case "invalid_scheme":
			return "URL must start with http:// or https://"
		case "invalid_inject":
			return "inject takes a source name or a mapping with a source key"
		case "unknown_source":
			return "unknown inject source: " + data["name"]
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
