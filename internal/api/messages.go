package api

// Fallback messages shown when the server did not provide one. The
// dashboard is bilingual; both catalogs are compiled in and selected by
// the resolved request locale.

const (
	LocaleEnglish = "en"
	LocaleArabic  = "ar"
)

type messageKey string

const (
	msgTimeout        messageKey = "timeout"
	msgNetwork        messageKey = "network"
	msgForbidden      messageKey = "forbidden"
	msgNotFound       messageKey = "not_found"
	msgValidation     messageKey = "validation"
	msgServer         messageKey = "server"
	msgUnknown        messageKey = "unknown"
	msgSessionExpired messageKey = "session_expired"
	msgOK             messageKey = "ok"
)

var messages = map[string]map[messageKey]string{
	LocaleEnglish: {
		msgTimeout:        "The request timed out. Please try again.",
		msgNetwork:        "Unable to reach the server. Check your connection.",
		msgForbidden:      "You do not have permission to perform this action.",
		msgNotFound:       "The requested resource was not found.",
		msgValidation:     "Some fields are invalid. Please review and try again.",
		msgServer:         "Something went wrong on the server. Please try again later.",
		msgUnknown:        "An unexpected error occurred.",
		msgSessionExpired: "Your session has expired. Please sign in again.",
		msgOK:             "Done successfully.",
	},
	LocaleArabic: {
		msgTimeout:        "انتهت مهلة الطلب. يرجى المحاولة مرة أخرى.",
		msgNetwork:        "تعذر الوصول إلى الخادم. تحقق من اتصالك بالإنترنت.",
		msgForbidden:      "ليس لديك صلاحية لتنفيذ هذا الإجراء.",
		msgNotFound:       "العنصر المطلوب غير موجود.",
		msgValidation:     "بعض الحقول غير صحيحة. يرجى المراجعة والمحاولة مرة أخرى.",
		msgServer:         "حدث خطأ في الخادم. يرجى المحاولة لاحقًا.",
		msgUnknown:        "حدث خطأ غير متوقع.",
		msgSessionExpired: "انتهت جلستك. يرجى تسجيل الدخول مرة أخرى.",
		msgOK:             "تمت العملية بنجاح.",
	},
}

func fallbackMessage(locale string, key messageKey) string {
	cat, ok := messages[locale]
	if !ok {
		cat = messages[LocaleEnglish]
	}
	if m, ok := cat[key]; ok {
		return m
	}
	return messages[LocaleEnglish][msgUnknown]
}

func fallbackForKind(locale string, kind Kind) string {
	switch kind {
	case KindTimeout:
		return fallbackMessage(locale, msgTimeout)
	case KindNetwork:
		return fallbackMessage(locale, msgNetwork)
	case KindAuth:
		return fallbackMessage(locale, msgSessionExpired)
	case KindForbidden:
		return fallbackMessage(locale, msgForbidden)
	case KindNotFound:
		return fallbackMessage(locale, msgNotFound)
	case KindValidation:
		return fallbackMessage(locale, msgValidation)
	case KindServer:
		return fallbackMessage(locale, msgServer)
	default:
		return fallbackMessage(locale, msgUnknown)
	}
}
