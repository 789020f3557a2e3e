package catalog

import "shipment-tracking-service/internal/domain"

// Aerial routes fly Pearl River Delta → North Pacific → Los Angeles →
// Pacific coast → Guayaquil. Both variants share every order from the
// transit segment onward; only the origin airport differs.

const aerialDestination = "Guayaquil, Ecuador (GYE)"

var (
	shenzhenWarehouse  = latLon(22.5550, 113.8830)
	shenzhenAirport    = latLon(22.6393, 113.8107)
	guangzhouWarehouse = latLon(23.1291, 113.2644)
	guangzhouAirport   = latLon(23.3924, 113.2988)

	guayaquilAirport       = latLon(-2.1574, -79.8837)
	guayaquilAirCargo      = latLon(-2.1600, -79.8850)
	guayaquilWarehouse     = latLon(-2.1700, -79.9224)
	guayaquilCustomerDepot = latLon(-2.1300, -79.8700)
	guayaquilPortCustoms   = latLon(-2.2790, -79.9010)
	guayaquilSeaportBerths = latLon(-2.2820, -79.9040)
)

var aerialTransit = []waypoint{
	{"PUNTO 1 / ESTRECHO DE TAIWAN", "Vuelo en curso", latLon(24.8000, 120.2000)},
	{"PUNTO 2 / OKINAWA", "Vuelo en curso", latLon(27.5000, 128.0000)},
	{"PUNTO 3 / TOKIO", "Vuelo en curso", latLon(35.5500, 139.7800)},
	{"PUNTO 4 / PACIFICO NORTE", "Vuelo en curso", latLon(44.0000, 160.0000)},
	{"PUNTO 5 / LINEA DE CAMBIO DE FECHA", "Vuelo en curso", latLon(51.8000, 179.5000)},
	{"PUNTO 6 / ISLAS ALEUTIANAS", "Vuelo en curso", latLon(51.9000, -176.6500)},
	{"PUNTO 7 / GOLFO DE ALASKA", "Vuelo en curso", latLon(54.0000, -150.0000)},
	{"PUNTO 8 / LOS ANGELES", "Escala en Estados Unidos", latLon(33.9416, -118.4085)},
	{"PUNTO 9 / BAJA CALIFORNIA", "Vuelo en curso", latLon(28.0000, -114.5000)},
	{"PUNTO 10 / MAZATLAN", "Vuelo en curso", latLon(23.1600, -106.2700)},
	{"PUNTO 11 / ACAPULCO", "Vuelo en curso", latLon(16.7600, -99.7500)},
	{"PUNTO 12 / GUATEMALA", "Vuelo en curso", latLon(14.5800, -90.5300)},
	{"PUNTO 13 / EL SALVADOR", "Vuelo en curso", latLon(13.4400, -89.0600)},
	{"PUNTO 14 / COSTA RICA", "Vuelo en curso", latLon(9.9900, -84.2000)},
	{"PUNTO 15 / PANAMA", "Vuelo en curso", latLon(9.0700, -79.3800)},
	{"PUNTO 16 / BUENAVENTURA", "Vuelo en curso", latLon(3.8800, -77.0300)},
	{"PUNTO 17 / TUMACO", "Vuelo en curso", latLon(1.8100, -78.7500)},
	{"PUNTO 18 / MANTA", "Vuelo en curso", latLon(-0.9500, -80.6800)},
	{"PUNTO 19 / GUAYAQUIL", "Arribo a aeropuerto de destino", guayaquilAirport},
}

func aerialGeneral() domain.RouteDefinition {
	b := &routeBuilder{}
	aerialOrigin(b, "SHENZHEN", "SZX", shenzhenWarehouse, shenzhenAirport)
	aerialTail(b)
	return b.build(domain.ServiceAerial, domain.CargoGeneral, "Shenzhen, China (SZX)", aerialDestination)
}

func aerialIMOMixta() domain.RouteDefinition {
	b := &routeBuilder{}
	aerialOrigin(b, "GUANGZHOU", "CAN", guangzhouWarehouse, guangzhouAirport)
	aerialTail(b)
	return b.build(domain.ServiceAerial, domain.CargoIMOMixta, "Guangzhou, China (CAN)", aerialDestination)
}

// aerialOrigin covers orders 1–13: first mile and origin customs.
func aerialOrigin(b *routeBuilder, city, iata string, warehouse, airport domain.Coordinates) {
	depot := "BODEGA ORIGEN / " + city
	terminal := "AEROPUERTO " + iata + " / " + city
	customsPlace := "ADUANA ORIGEN / " + iata

	b.add(domain.PhaseFirstMile, depot, "Documentos recibidos", warehouse)
	b.add(domain.PhaseFirstMile, depot, "Mercadería recibida en bodega", warehouse)
	b.vehicleProgress(domain.PhaseFirstMile, "TRASLADO A "+terminal, warehouse, airport)
	b.add(domain.PhaseFirstMile, terminal, "Llegada a aeropuerto de origen", airport)

	b.customs(domain.PhaseCustomsOrigin, customsPlace, airport, "En espera de embarque", "Embarque confirmado")
}

// aerialTail covers orders 14–45: transit, destination customs, last mile.
func aerialTail(b *routeBuilder) {
	b.waypoints(aerialTransit)
	b.customs(domain.PhaseCustomsDestination, "ADUANA DESTINO / GYE", guayaquilAirCargo,
		"En espera de retiro", "Retiro confirmado")
	guayaquilLastMile(b)
}

// guayaquilLastMile is shared by every route ending in Guayaquil.
func guayaquilLastMile(b *routeBuilder) {
	depot := "BODEGA DESTINO / GUAYAQUIL"
	b.add(domain.PhaseLastMile, depot, "Mercadería recibida en bodega de destino", guayaquilWarehouse)
	b.vehicleProgress(domain.PhaseLastMile, "ENTREGA / GUAYAQUIL", guayaquilWarehouse, guayaquilCustomerDepot)
	b.add(domain.PhaseLastMile, "CLIENTE / GUAYAQUIL", "Llegada a destino", guayaquilCustomerDepot)
	b.add(domain.PhaseLastMile, "CLIENTE / GUAYAQUIL", "Entregado", guayaquilCustomerDepot)
}
