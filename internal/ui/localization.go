package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyChooseFile        = "choose_file"
	KeyProcess           = "process"
	KeyPreview           = "preview"
	KeyDownload          = "download"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyBackendURL        = "backend_url"
	KeyPollInterval      = "poll_interval"
	KeyExportDirectory   = "export_directory"
	KeyAutoOpenPreview   = "auto_open_preview"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyNoFileSelected    = "no_file_selected"
	KeyPleaseSelectFile  = "please_select_file"
	KeyUploading         = "uploading"
	KeyProcessing        = "processing"
	KeyComplete          = "complete"
	KeyProcessingFailed  = "processing_failed"
	KeyTreeUnavailable   = "tree_unavailable"
	KeyExportResults     = "export_results"
	KeyExportBundle      = "export_bundle"
	KeyExportComplete    = "export_complete"
	KeyExportFailed      = "export_failed"
	KeyExportPartial     = "export_partial"
	KeyDownloadOnly      = "download_only"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyNoResultsYet      = "no_results_yet"
	KeyResultReady       = "result_ready"
	KeySelectResultFirst = "select_result_first"
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
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "DocForge",
		KeyChooseFile:        "Choose PDF",
		KeyProcess:           "Process",
		KeyPreview:           "Preview",
		KeyDownload:          "Download",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyBackendURL:        "Backend URL",
		KeyPollInterval:      "Poll Interval (seconds)",
		KeyExportDirectory:   "Export Directory",
		KeyAutoOpenPreview:   "Open preview on selection",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyNoFileSelected:    "No file selected",
		KeyPleaseSelectFile:  "Please select a PDF file first",
		KeyUploading:         "Uploading...",
		KeyProcessing:        "Processing...",
		KeyComplete:          "Processing complete",
		KeyProcessingFailed:  "Processing failed",
		KeyTreeUnavailable:   "Results ready, but the file tree could not be loaded",
		KeyExportResults:     "Export Results...",
		KeyExportBundle:      "Export Offline Bundle...",
		KeyExportComplete:    "Export complete",
		KeyExportFailed:      "Export failed",
		KeyExportPartial:     "Export finished with skipped files",
		KeyDownloadOnly:      "No preview available for this file type",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorOpeningFile:  "Error opening file",
		KeyNoResultsYet:      "No results yet",
		KeyResultReady:       "Result archive ready",
		KeySelectResultFirst: "Select a result file first",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "DocForge",
		KeyChooseFile:        "Выбрать PDF",
		KeyProcess:           "Обработать",
		KeyPreview:           "Просмотр",
		KeyDownload:          "Скачать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyBackendURL:        "Адрес сервера",
		KeyPollInterval:      "Интервал опроса (сек)",
		KeyExportDirectory:   "Папка экспорта",
		KeyAutoOpenPreview:   "Открывать просмотр при выборе",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyNoFileSelected:    "Файл не выбран",
		KeyPleaseSelectFile:  "Сначала выберите PDF файл",
		KeyUploading:         "Загрузка...",
		KeyProcessing:        "Обработка...",
		KeyComplete:          "Обработка завершена",
		KeyProcessingFailed:  "Ошибка обработки",
		KeyTreeUnavailable:   "Результаты готовы, но дерево файлов не загрузилось",
		KeyExportResults:     "Экспорт результатов...",
		KeyExportBundle:      "Экспорт офлайн-архива...",
		KeyExportComplete:    "Экспорт завершён",
		KeyExportFailed:      "Ошибка экспорта",
		KeyExportPartial:     "Экспорт завершён с пропущенными файлами",
		KeyDownloadOnly:      "Для этого типа файла просмотр недоступен",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyNoResultsYet:      "Результатов пока нет",
		KeyResultReady:       "Архив с результатами готов",
		KeySelectResultFirst: "Сначала выберите файл результата",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "DocForge",
		KeyChooseFile:        "Escolher PDF",
		KeyProcess:           "Processar",
		KeyPreview:           "Visualizar",
		KeyDownload:          "Baixar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyBackendURL:        "URL do Servidor",
		KeyPollInterval:      "Intervalo de Consulta (seg)",
		KeyExportDirectory:   "Diretório de Exportação",
		KeyAutoOpenPreview:   "Abrir visualização ao selecionar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyNoFileSelected:    "Nenhum arquivo selecionado",
		KeyPleaseSelectFile:  "Selecione um arquivo PDF primeiro",
		KeyUploading:         "Enviando...",
		KeyProcessing:        "Processando...",
		KeyComplete:          "Processamento concluído",
		KeyProcessingFailed:  "Falha no processamento",
		KeyTreeUnavailable:   "Resultados prontos, mas a árvore de arquivos não carregou",
		KeyExportResults:     "Exportar Resultados...",
		KeyExportBundle:      "Exportar Pacote Offline...",
		KeyExportComplete:    "Exportação concluída",
		KeyExportFailed:      "Falha na exportação",
		KeyExportPartial:     "Exportação concluída com arquivos ignorados",
		KeyDownloadOnly:      "Visualização indisponível para este tipo de arquivo",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyNoResultsYet:      "Nenhum resultado ainda",
		KeyResultReady:       "Arquivo de resultados pronto",
		KeySelectResultFirst: "Selecione um arquivo de resultado primeiro",
	}
}
