package catalog

import "shipment-tracking-service/internal/domain"

// Maritime routes leave the Yangtze River Delta, cross the Pacific along
// the 35th parallel, call at Manzanillo and Balboa, and discharge in
// Guayaquil. Variants differ only in the loading port.

const maritimeDestination = "Guayaquil, Ecuador (ECGYE)"

var (
	shanghaiWarehouse = latLon(31.2304, 121.4737)
	yangshanPort      = latLon(30.6266, 122.0650)
	ningboWarehouse   = latLon(29.8683, 121.5440)
	ningboPort        = latLon(29.9333, 121.8500)
)

var maritimeTransit = []waypoint{
	{"PUNTO 1 / MAR DE CHINA ORIENTAL", "Navegando", latLon(30.5000, 124.5000)},
	{"PUNTO 2 / SUR DE JAPON", "Navegando", latLon(32.0000, 132.0000)},
	{"PUNTO 3 / PACIFICO OCCIDENTAL", "Navegando", latLon(33.5000, 142.0000)},
	{"PUNTO 4 / PACIFICO OCCIDENTAL", "Navegando", latLon(34.5000, 152.0000)},
	{"PUNTO 5 / PACIFICO NORTE", "Navegando", latLon(35.0000, 162.0000)},
	{"PUNTO 6 / PACIFICO NORTE", "Navegando", latLon(35.0000, 172.0000)},
	{"PUNTO 7 / LINEA DE CAMBIO DE FECHA", "Navegando", latLon(34.5000, 179.6000)},
	{"PUNTO 8 / PACIFICO NORTE", "Navegando", latLon(34.0000, -172.0000)},
	{"PUNTO 9 / PACIFICO CENTRAL", "Navegando", latLon(32.5000, -162.0000)},
	{"PUNTO 10 / NORESTE DE HAWAII", "Navegando", latLon(30.0000, -152.0000)},
	{"PUNTO 11 / PACIFICO ORIENTAL", "Navegando", latLon(27.0000, -142.0000)},
	{"PUNTO 12 / PACIFICO ORIENTAL", "Navegando", latLon(23.5000, -132.0000)},
	{"PUNTO 13 / PACIFICO ORIENTAL", "Navegando", latLon(20.0000, -123.0000)},
	{"PUNTO 14 / MANZANILLO", "Escala en puerto de transbordo", latLon(19.0500, -104.3200)},
	{"PUNTO 15 / PACIFICO MEXICANO", "Navegando", latLon(15.5000, -99.0000)},
	{"PUNTO 16 / GOLFO DE TEHUANTEPEC", "Navegando", latLon(14.5000, -95.0000)},
	{"PUNTO 17 / PUERTO QUETZAL", "Navegando", latLon(13.9200, -90.7900)},
	{"PUNTO 18 / PACIFICO CENTROAMERICANO", "Navegando", latLon(11.0000, -88.0000)},
	{"PUNTO 19 / GOLFO DE PANAMA", "Navegando", latLon(7.0000, -79.5000)},
	{"PUNTO 20 / BALBOA", "Escala en puerto de transbordo", latLon(8.9500, -79.5700)},
	{"PUNTO 21 / PACIFICO COLOMBIANO", "Navegando", latLon(4.5000, -79.8000)},
	{"PUNTO 22 / ESMERALDAS", "Navegando", latLon(1.0000, -80.5000)},
	{"PUNTO 23 / GOLFO DE GUAYAQUIL", "Navegando", latLon(-2.8000, -80.5000)},
	{"PUNTO 24 / PUERTO DE GUAYAQUIL", "Arribo a puerto de destino", guayaquilSeaportBerths},
}

func maritimeGeneral() domain.RouteDefinition {
	b := &routeBuilder{}
	maritimeOrigin(b, "SHANGHAI", "YANGSHAN", shanghaiWarehouse, yangshanPort)
	maritimeTail(b)
	return b.build(domain.ServiceMaritime, domain.CargoGeneral, "Shanghai, China (CNSHA)", maritimeDestination)
}

func maritimeIMOMixta() domain.RouteDefinition {
	b := &routeBuilder{}
	maritimeOrigin(b, "NINGBO", "NINGBO-ZHOUSHAN", ningboWarehouse, ningboPort)
	maritimeTail(b)
	return b.build(domain.ServiceMaritime, domain.CargoIMOMixta, "Ningbo, China (CNNGB)", maritimeDestination)
}

// maritimeOrigin covers orders 1–13.
func maritimeOrigin(b *routeBuilder, city, port string, warehouse, terminal domain.Coordinates) {
	depot := "BODEGA ORIGEN / " + city
	portPlace := "PUERTO " + port

	b.add(domain.PhaseFirstMile, depot, "Documentos recibidos", warehouse)
	b.add(domain.PhaseFirstMile, depot, "Mercadería recibida en bodega", warehouse)
	b.vehicleProgress(domain.PhaseFirstMile, "TRASLADO A "+portPlace, warehouse, terminal)
	b.add(domain.PhaseFirstMile, portPlace, "Contenedor ingresado a terminal portuaria", terminal)

	b.customs(domain.PhaseCustomsOrigin, "ADUANA ORIGEN / "+port, terminal,
		"En espera de carga al buque", "Contenedor embarcado")
}

// maritimeTail covers orders 14–50.
func maritimeTail(b *routeBuilder) {
	b.waypoints(maritimeTransit)
	b.customs(domain.PhaseCustomsDestination, "ADUANA DESTINO / PUERTO DE GUAYAQUIL", guayaquilPortCustoms,
		"En espera de retiro", "Retiro confirmado")
	guayaquilLastMile(b)
}
