package content

import "github.com/thibault/resume-site/internal/types"

// Normalize fills in defaults the content file may omit. Currently this is
// only the progress bar color.
func Normalize(data *types.ResumeData) {
	sections := [][]types.ProgressSkill{
		data.Languages,
		data.ProgrammingLang,
		data.Tools,
		data.MarkupLanguages,
	}
	for _, section := range sections {
		for i := range section {
			if section[i].Color == "" {
				section[i].Color = types.DefaultProgressColor
			}
		}
	}
}
