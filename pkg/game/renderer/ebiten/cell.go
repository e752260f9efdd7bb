package ebiten

import (
	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/renderer"
)

// Floor icons for the different room types
var roomFloorIcons = map[entities.RoomType]string{
	entities.RoomOffice:  "▫",
	entities.RoomHallway: "░",
	entities.RoomStorage: "□",
	entities.RoomAtrium:  "◦",
	entities.RoomUtility: "◇",
}

// getCellRenderOptions determines the icon and colors for the cell at (x, z)
func getCellRenderOptions(scene *renderer.Scene, x, z int) CellRenderOptions {
	switch scene.Kind(x, z) {
	case renderer.KindWall:
		return CellRenderOptions{Icon: IconWall, Color: colorWall, HasBackground: true, BackgroundColor: colorWallBg}
	case renderer.KindFloor:
		return CellRenderOptions{Icon: IconFloor, Color: colorFloor}
	case renderer.KindRoomFloor:
		icon := IconFloor
		if room, ok := scene.Room(x, z); ok {
			if i, ok := roomFloorIcons[room.Type]; ok {
				icon = i
			}
		}
		return CellRenderOptions{Icon: icon, Color: colorRoomFloor}
	case renderer.KindDecoration:
		return CellRenderOptions{Icon: IconDecoration, Color: colorDecoration}
	case renderer.KindColumn:
		return CellRenderOptions{Icon: IconColumn, Color: colorColumn, HasBackground: true, BackgroundColor: colorColumnBg}
	case renderer.KindSpawn:
		return CellRenderOptions{Icon: IconSpawn, Color: colorSpawn}
	case renderer.KindExit:
		return CellRenderOptions{Icon: IconExit, Color: colorExit}
	case renderer.KindLight:
		return CellRenderOptions{Icon: IconLight, Color: colorLight}
	case renderer.KindDeadLight:
		return CellRenderOptions{Icon: IconDeadLight, Color: colorDeadLight}
	default:
		return CellRenderOptions{Icon: IconVoid, Color: colorMapBackground}
	}
}
