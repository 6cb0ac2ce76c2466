package producto

// StockLevel is the inventory section a product is listed in.
type StockLevel int

const (
	SinStock StockLevel = iota
	PocoStock
	Disponible
)

// PocoStockMax is the highest stock still considered low.
const PocoStockMax = 5

// LevelOf classifies a stock quantity.
func LevelOf(stock int) StockLevel {
	switch {
	case stock <= 0:
		return SinStock
	case stock <= PocoStockMax:
		return PocoStock
	default:
		return Disponible
	}
}

func (l StockLevel) String() string {
	switch l {
	case SinStock:
		return "sin-stock"
	case PocoStock:
		return "poco-stock"
	case Disponible:
		return "disponible"
	default:
		return "unknown"
	}
}

// Label is the section heading shown in the inventory tab.
func (l StockLevel) Label() string {
	switch l {
	case SinStock:
		return "Sin Stock"
	case PocoStock:
		return "Poco Stock"
	case Disponible:
		return "Disponibles"
	default:
		return ""
	}
}

// Levels lists the sections in display order.
func Levels() []StockLevel {
	return []StockLevel{Disponible, PocoStock, SinStock}
}
