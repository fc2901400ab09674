package services

import "projectconnect/internal/config"

// VocabularyService is the attribute vocabulary provider: the ordered
// lists users and projects pick their attribute sets from. The core only
// serves the lists; it never derives them from stored data.
type VocabularyService interface {
	ListSkills() []string
	ListProgrammingLanguages() []string
	ListFrameworks() []string
}

type vocabularyService struct {
	skills               []string
	programmingLanguages []string
	frameworks           []string
}

// Built-in vocabulary, used when the config does not override it.
var (
	defaultSkills = []string{
		"Agile", "Architecture", "CI/CD", "Cloud", "Databases", "DevOps",
		"Distributed Systems", "Machine Learning", "Mobile", "Networking",
		"Security", "SQL", "Testing", "UI/UX", "Web Development",
	}
	defaultProgrammingLanguages = []string{
		"C", "C++", "C#", "Go", "Java", "JavaScript", "Kotlin", "Python",
		"Ruby", "Rust", "Scala", "Swift", "TypeScript",
	}
	defaultFrameworks = []string{
		"Angular", ".NET", "Django", "Express", "Flask", "Gin", "Rails",
		"React", "Spring", "Vue",
	}
)

func NewVocabularyService(cfg *config.Config) VocabularyService {
	s := &vocabularyService{
		skills:               defaultSkills,
		programmingLanguages: defaultProgrammingLanguages,
		frameworks:           defaultFrameworks,
	}
	if cfg != nil {
		if len(cfg.Vocabulary.Skills) > 0 {
			s.skills = cfg.Vocabulary.Skills
		}
		if len(cfg.Vocabulary.ProgrammingLanguages) > 0 {
			s.programmingLanguages = cfg.Vocabulary.ProgrammingLanguages
		}
		if len(cfg.Vocabulary.Frameworks) > 0 {
			s.frameworks = cfg.Vocabulary.Frameworks
		}
	}
	return s
}

func (s *vocabularyService) ListSkills() []string               { return s.skills }
func (s *vocabularyService) ListProgrammingLanguages() []string { return s.programmingLanguages }
func (s *vocabularyService) ListFrameworks() []string           { return s.frameworks }
