package get_booking_page

import (
	"github.com/m04kA/SMC-RideSlotService/internal/domain"
	"github.com/m04kA/SMC-RideSlotService/internal/service/page"
)

// pageData данные шаблона страницы
type pageData struct {
	page.View
	Modes       []modeLink
	CloseLabel  string
	ReopenLabel string
}

// modeLink переключатель режима в шапке
type modeLink struct {
	Key     string
	Icon    string
	Current bool
}

func newPageData(view page.View) pageData {
	data := pageData{
		View:        view,
		CloseLabel:  domain.LabelClose,
		ReopenLabel: domain.LabelReopen,
	}
	for _, mode := range domain.Modes() {
		data.Modes = append(data.Modes, modeLink{
			Key:     mode.Key,
			Icon:    mode.Icon,
			Current: mode.Key == view.Mode,
		})
	}
	return data
}
