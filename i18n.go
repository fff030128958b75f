package main

// Language selects the UI and advice language. Portuguese is the default,
// matching the app's original audience.
type Language string

const (
	LangPT Language = "pt"
	LangEN Language = "en"
)

// translationSet holds every user-facing string for one language.
type translationSet struct {
	AppTitle string

	// Menus and prompts
	MenuMain        string
	MenuOnboarding  string
	PromptChoice    string
	PromptDate      string
	Goodbye         string
	InvalidOption   string
	SavedSuccess    string
	ConfirmDelete   string
	ConfirmReset    string
	ConfirmDemo     string
	ConfirmOverride string

	// Overview labels
	CurrentWeight string
	OnTrack       string
	OffTrack      string
	DailyGoal     string
	MaxIntake     string
	DaysLeft      string
	Projected     string
	RealWeight    string

	// Spreadsheet
	NoRecords   string
	ColDate     string
	ColWeight   string
	ColCalIn    string
	ColExercise string
	ColWater    string
	ColSleep    string

	// State messages
	JourneyStarted string
	InvalidFile    string
	ImportOK       string
	ExportOK       string
	ResetDone      string
	DemoLoaded     string

	// Advice
	AdviceLanguage string // language name injected into the prompt
	AdviceEmpty    string // model returned no text
	AdviceError    string // transport / API failure
	AdviceLoading  string

	// Weekday abbreviations, Sunday first.
	Weekdays [7]string
}

var translations = map[Language]translationSet{
	LangPT: {
		AppTitle: "EmagreceAI",

		MenuMain:        "[1] Visão geral  [2] Registro diário  [3] Planilha  [4] Configurações  [l] Idioma  [q] Sair",
		MenuOnboarding:  "[1] Criar perfil  [2] Importar backup  [3] Carregar demo  [q] Sair",
		PromptChoice:    "Opção: ",
		PromptDate:      "Data (YYYY-MM-DD, vazio = hoje): ",
		Goodbye:         "Até logo!",
		InvalidOption:   "Opção inválida.",
		SavedSuccess:    "Registro salvo com sucesso!",
		ConfirmDelete:   "Tem certeza que deseja remover o registro deste dia?",
		ConfirmReset:    "Isso apagará todos os seus dados. Deseja continuar?",
		ConfirmDemo:     "Isso irá substituir seus dados atuais por dados de demonstração. Deseja continuar?",
		ConfirmOverride: "Isso substituirá seus dados atuais. Deseja continuar?",

		CurrentWeight: "Peso atual",
		OnTrack:       "No caminho certo!",
		OffTrack:      "Fora do ritmo",
		DailyGoal:     "Déficit diário",
		MaxIntake:     "Consumo máximo",
		DaysLeft:      "Dias restantes",
		Projected:     "Peso projetado",
		RealWeight:    "Peso real",

		NoRecords:   "Nenhum registro encontrado.",
		ColDate:     "Data",
		ColWeight:   "Peso (kg)",
		ColCalIn:    "Calorias",
		ColExercise: "Exercício",
		ColWater:    "Água (L)",
		ColSleep:    "Sono (h)",

		JourneyStarted: "Início da jornada!",
		InvalidFile:    "Arquivo inválido.",
		ImportOK:       "Dados importados com sucesso!",
		ExportOK:       "Backup exportado para",
		ResetDone:      "Dados apagados.",
		DemoLoaded:     "Dados de demonstração carregados.",

		AdviceLanguage: "português do Brasil",
		AdviceEmpty:    "Não foi possível gerar sugestões no momento.",
		AdviceError:    "Ocorreu um erro ao tentar conectar com a IA. Tente novamente mais tarde.",
		AdviceLoading:  "Consultando a IA...",

		Weekdays: [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"},
	},
	LangEN: {
		AppTitle: "EmagreceAI",

		MenuMain:        "[1] Overview  [2] Daily log  [3] Spreadsheet  [4] Settings  [l] Language  [q] Quit",
		MenuOnboarding:  "[1] Create profile  [2] Import backup  [3] Load demo  [q] Quit",
		PromptChoice:    "Choice: ",
		PromptDate:      "Date (YYYY-MM-DD, empty = today): ",
		Goodbye:         "See you!",
		InvalidOption:   "Invalid option.",
		SavedSuccess:    "Log saved successfully!",
		ConfirmDelete:   "Are you sure you want to remove this log?",
		ConfirmReset:    "This will erase all of your data. Continue?",
		ConfirmDemo:     "This will replace your current data with demo data. Continue?",
		ConfirmOverride: "This will replace your current data. Continue?",

		CurrentWeight: "Current weight",
		OnTrack:       "On track!",
		OffTrack:      "Off pace",
		DailyGoal:     "Daily deficit",
		MaxIntake:     "Max intake",
		DaysLeft:      "Days left",
		Projected:     "Projected weight",
		RealWeight:    "Real weight",

		NoRecords:   "No records found.",
		ColDate:     "Date",
		ColWeight:   "Weight (kg)",
		ColCalIn:    "Calories",
		ColExercise: "Exercise",
		ColWater:    "Water (L)",
		ColSleep:    "Sleep (h)",

		JourneyStarted: "Journey started!",
		InvalidFile:    "Invalid file.",
		ImportOK:       "Data imported successfully!",
		ExportOK:       "Backup exported to",
		ResetDone:      "Data erased.",
		DemoLoaded:     "Demo data loaded.",

		AdviceLanguage: "English",
		AdviceEmpty:    "Could not generate advice at the moment.",
		AdviceError:    "An error occurred while connecting to AI. Please try again later.",
		AdviceLoading:  "Asking the AI...",

		Weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
}

// tr returns the translation set for lang, falling back to Portuguese for an
// unknown language value.
func tr(lang Language) translationSet {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[LangPT]
}
