package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle = "app_title"

	KeyNavHome     = "nav_home"
	KeyNavOwners   = "nav_owners"
	KeyNavCars     = "nav_cars"
	KeyNavLogin    = "nav_login"
	KeyNavRegister = "nav_register"
	KeyNavLogout   = "nav_logout"

	KeyHomeWelcome = "home_welcome"
	KeyHomeHint    = "home_hint"

	KeyLoginTitle         = "login_title"
	KeyRegisterTitle      = "register_title"
	KeyUsername           = "username"
	KeyPassword           = "password"
	KeyInvalidCredentials = "invalid_credentials"
	KeyUsernameTaken      = "username_taken"
	KeyRegisterSuccess    = "register_success"

	KeyOwnersTitle       = "owners_title"
	KeyCarsTitle         = "cars_title"
	KeySearchPlaceholder = "search_placeholder"
	KeyExportCSV         = "export_csv"
	KeySortByName        = "sort_by_name"
	KeySortByEmail       = "sort_by_email"
	KeySortByBrand       = "sort_by_brand"
	KeySortByYear        = "sort_by_year"
	KeySortAsc           = "sort_asc"
	KeySortDesc          = "sort_desc"

	KeyAddOwner         = "add_owner"
	KeyAddCar           = "add_car"
	KeyOwnerName        = "owner_name_placeholder"
	KeyOwnerEmail       = "owner_email_placeholder"
	KeyBrand            = "brand_placeholder"
	KeyModel            = "model_placeholder"
	KeyYear             = "year_placeholder"
	KeyOwnerID          = "owner_id_placeholder"
	KeyEnterBrand       = "enter_brand"
	KeyEnterOwnerName   = "enter_owner_name"
	KeyLoadingOwners    = "loading_owners"
	KeyLoadingCars      = "loading_cars"
	KeyNoOwners         = "no_owners"
	KeyNoCars           = "no_cars"
	KeyNoExportData     = "no_export_data"
	KeyPrevPage         = "prev_page"
	KeyNextPage         = "next_page"

	KeyEdit               = "edit"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyDelete             = "delete"
	KeyConfirmDeleteTitle = "confirm_delete_title"
	KeyConfirmDeleteCar   = "confirm_delete_car"
	KeyConfirmDeleteOwner = "confirm_delete_owner"

	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeyServerURL     = "server_url"
	KeySettingsSaved = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle: "FleetView",

		KeyNavHome:     "Home",
		KeyNavOwners:   "Owners",
		KeyNavCars:     "Cars",
		KeyNavLogin:    "Login",
		KeyNavRegister: "Register",
		KeyNavLogout:   "Logout",

		KeyHomeWelcome: "Welcome to FleetView",
		KeyHomeHint:    "Use the navigation bar to view Owners or Cars.",

		KeyLoginTitle:         "Login",
		KeyRegisterTitle:      "Register",
		KeyUsername:           "Username",
		KeyPassword:           "Password",
		KeyInvalidCredentials: "Invalid credentials",
		KeyUsernameTaken:      "Username already taken",
		KeyRegisterSuccess:    "Registered successfully! Redirecting...",

		KeyOwnersTitle:       IconOwners + " Owners",
		KeyCarsTitle:         IconCars + " Cars",
		KeySearchPlaceholder: IconSearch + " Search...",
		KeyExportCSV:         IconExport + " Export CSV",
		KeySortByName:        "Sort by Name",
		KeySortByEmail:       "Sort by Email",
		KeySortByBrand:       "Sort by Brand",
		KeySortByYear:        "Sort by Year",
		KeySortAsc:           IconAsc + " Asc",
		KeySortDesc:          IconDesc + " Desc",

		KeyAddOwner:       IconAdd + " Add",
		KeyAddCar:         IconAdd + " Add Car",
		KeyOwnerName:      "Enter owner name...",
		KeyOwnerEmail:     "Enter owner email...",
		KeyBrand:          "Brand",
		KeyModel:          "Model",
		KeyYear:           "Year",
		KeyOwnerID:        "Owner ID",
		KeyEnterBrand:     "Enter a brand name",
		KeyEnterOwnerName: "Enter an owner name",
		KeyLoadingOwners:  "⏳ Loading owners...",
		KeyLoadingCars:    "⏳ Loading cars...",
		KeyNoOwners:       "No owners yet.",
		KeyNoCars:         "No cars added yet.",
		KeyNoExportData:   "No data to export",
		KeyPrevPage:       "⬅️ Prev",
		KeyNextPage:       "Next ➡️",

		KeyEdit:               IconEdit + " Edit",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyDelete:             IconDelete + " Delete",
		KeyConfirmDeleteTitle: "Confirm",
		KeyConfirmDeleteCar:   "Delete this car?",
		KeyConfirmDeleteOwner: "Delete this owner?",

		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeyServerURL:     "Server URL",
		KeySettingsSaved: "Settings saved. Server URL changes apply after restart.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle: "FleetView",

		KeyNavHome:     "Главная",
		KeyNavOwners:   "Владельцы",
		KeyNavCars:     "Машины",
		KeyNavLogin:    "Вход",
		KeyNavRegister: "Регистрация",
		KeyNavLogout:   "Выйти",

		KeyHomeWelcome: "Добро пожаловать в FleetView",
		KeyHomeHint:    "Используйте панель навигации для просмотра владельцев и машин.",

		KeyLoginTitle:         "Вход",
		KeyRegisterTitle:      "Регистрация",
		KeyUsername:           "Имя пользователя",
		KeyPassword:           "Пароль",
		KeyInvalidCredentials: "Неверные учётные данные",
		KeyUsernameTaken:      "Имя пользователя занято",
		KeyRegisterSuccess:    "Успешная регистрация! Перенаправление...",

		KeyOwnersTitle:       IconOwners + " Владельцы",
		KeyCarsTitle:         IconCars + " Машины",
		KeySearchPlaceholder: IconSearch + " Поиск...",
		KeyExportCSV:         IconExport + " Экспорт CSV",
		KeySortByName:        "По имени",
		KeySortByEmail:       "По email",
		KeySortByBrand:       "По марке",
		KeySortByYear:        "По году",
		KeySortAsc:           IconAsc + " По возр.",
		KeySortDesc:          IconDesc + " По убыв.",

		KeyAddOwner:       IconAdd + " Добавить",
		KeyAddCar:         IconAdd + " Добавить машину",
		KeyOwnerName:      "Имя владельца...",
		KeyOwnerEmail:     "Email владельца...",
		KeyBrand:          "Марка",
		KeyModel:          "Модель",
		KeyYear:           "Год",
		KeyOwnerID:        "ID владельца",
		KeyEnterBrand:     "Введите название марки",
		KeyEnterOwnerName: "Введите имя владельца",
		KeyLoadingOwners:  "⏳ Загрузка владельцев...",
		KeyLoadingCars:    "⏳ Загрузка автомобилей...",
		KeyNoOwners:       "Нет владельцев.",
		KeyNoCars:         "Нет добавленных машин.",
		KeyNoExportData:   "Нет данных для экспорта",
		KeyPrevPage:       "⬅️ Назад",
		KeyNextPage:       "Вперёд ➡️",

		KeyEdit:               IconEdit + " Изменить",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyDelete:             IconDelete + " Удалить",
		KeyConfirmDeleteTitle: "Подтверждение",
		KeyConfirmDeleteCar:   "Удалить машину?",
		KeyConfirmDeleteOwner: "Удалить владельца?",

		KeySettings:      "Настройки",
		KeyFile:          "Файл",
		KeyLanguage:      "Язык",
		KeyServerURL:     "Адрес сервера",
		KeySettingsSaved: "Настройки сохранены. Адрес сервера применится после перезапуска.",
	}
}
