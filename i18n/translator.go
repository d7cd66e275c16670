package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "got" or "indent").
type Translator interface {
	Message(code string, data map[string]string) string
}

// Dictionary returns the built-in dictionary Translator for lang ("en"/"ja").
// Unknown languages fall back to English.
func Dictionary(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			return "YAMLの構文が不正です"
		case "duplicate_key":
			return "キーが重複しています"
		case "unknown_key":
			return "未知のキーです"
		case "invalid_type":
			return "型が不正です"
		case "invalid_format":
			return "日付の形式が不正です"
		case "unrepresentable":
			return "YAMLに変換できない値です"
		case "invalid_option":
			if got, ok := data["got"]; ok {
				return "オプションが不正です: " + got
			}
			return "オプションが不正です"
		}
	default: // "en"
		switch code {
		case "parse_error":
			return "malformed YAML"
		case "duplicate_key":
			return "duplicate key"
		case "unknown_key":
			return "unknown key"
		case "invalid_type":
			return "invalid type"
		case "invalid_format":
			return "invalid date format"
		case "unrepresentable":
			return "value cannot be represented as YAML"
		case "invalid_option":
			if got, ok := data["got"]; ok {
				return "invalid option: " + got
			}
			return "invalid option"
		}
	}
	return code
}
