package ical

import "naptar/src-server/model"

const (
	wasteLocation   = "Martonvásár, Magyarország"
	wasteReminder   = "Emlékeztető: Hulladék kihelyezés másnap reggelre!"
	wasteTrigger    = "-PT7H"
	uidDomain       = "hulladeknaptar.app"
	timezone        = "Europe/Budapest"
	nameDayCategory = "Névnap"
)

func wasteSummary(t model.WasteType) string {
	switch t {
	case model.WasteSelective:
		return "♻️ Szelektív hulladékgyűjtés"
	case model.WasteGreen:
		return "🌿 Zöldhulladék gyűjtés"
	case model.WasteMixed:
		return "🗑️ Vegyes hulladékgyűjtés"
	case model.WasteGlass:
		return "🍾 Üveghulladék gyűjtés"
	default:
		return "Hulladékgyűjtés"
	}
}

func wasteDescription(t model.WasteType) string {
	switch t {
	case model.WasteSelective:
		return "Papír, műanyag és fém hulladékok gyűjtése. Kérjük, a hulladékot a szállítás napján reggel 5 óráig helyezze ki!"
	case model.WasteGreen:
		return "Kerti zöldhulladék gyűjtése. Kérjük, a hulladékot a szállítás napján reggel 5 óráig helyezze ki!"
	case model.WasteMixed:
		return "Kommunális (vegyes) hulladék gyűjtése. Kérjük, a hulladékot a szállítás napján reggel 5 óráig helyezze ki!"
	case model.WasteGlass:
		return "Üveghulladék gyűjtése (fehér és színes). Kérjük, az üvegeket kiöblítve helyezze ki!"
	default:
		return ""
	}
}
