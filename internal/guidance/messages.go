package guidance

import "github.com/shenikar/fire_reporting_system/internal/models"

// Запасные тексты для пользователя. Любой сбой (лимит, сеть,
// неконфигурированный ключ) завершается одним из них, а не ошибкой.
// Всегда содержат указание позвонить в пожарную службу (199).

const (
	limitReachedEN = "Daily usage limit reached. Please provide your own API key or try again tomorrow. Call Fire Service (199) immediately."
	limitReachedBN = "দৈনিক ব্যবহারের সীমা পৌঁছে গেছে। অনুগ্রহ করে আপনার নিজের API কী প্রদান করুন অথবা আগামীকাল আবার চেষ্টা করুন। অবিলম্বে ফায়ার সার্ভিসে (১৯৯) কল করুন।"

	unavailableEN = "Sorry, the assistant is unavailable right now. Please call Fire Service (199) immediately and move to safety."
	unavailableBN = "দুঃখিত, সহায়ক এখন উপলব্ধ নয়। অবিলম্বে ফায়ার সার্ভিস (১৯৯) কল করুন এবং নিরাপদ স্থানে সরে যান।"
)

// LimitReachedMessage возвращает локализованное сообщение об исчерпанном лимите
func LimitReachedMessage(lang models.Language) string {
	if lang == models.LanguageBangla {
		return limitReachedBN
	}
	return limitReachedEN
}

// UnavailableMessage возвращает локализованное сообщение о недоступности сервиса
func UnavailableMessage(lang models.Language) string {
	if lang == models.LanguageBangla {
		return unavailableBN
	}
	return unavailableEN
}
