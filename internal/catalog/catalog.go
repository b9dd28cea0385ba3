// Package catalog holds the static mission curriculum: the base modules every
// team works through and the optional project tracks layered on top. The
// catalog is pure data; it never reads or writes team state.
package catalog

import "github.com/mentoraqua/guardianes-api/internal/models"

// ProjectDefinition describes a selectable project track. Extension modules
// use a disjoint, higher ID range so base ordering and indexes stay stable.
type ProjectDefinition struct {
	ID      string                    `json:"id"`
	Title   string                    `json:"title"`
	Mission string                    `json:"mission"`
	Summary string                    `json:"summary"`
	Color   string                    `json:"color"`
	Modules []models.ModuleDefinition `json:"-"`
}

var baseModules = []models.ModuleDefinition{
	{
		ID:          1,
		Title:       "Mision 1: El ADN del Agua",
		Description: "Formaremos nuestro equipo de Guardianes y definiremos las preguntas clave de nuestra investigacion.",
		Icon:        "TeamIcon",
		Fields: []models.FormField{
			{ID: "info_m1", Type: models.FieldTypeInfo, Text: "Nuestra Mision: Usar el poder de los numeros para entender y proponer soluciones al problema del agua en nuestra comunidad."},
			{ID: "header_equipo", Type: models.FieldTypeHeader, Text: "Seccion 1: Constitucion del Equipo"},
			{ID: "rol_lider", Type: models.FieldTypeSelect, Label: "Lider/Coordinador(a):", Placeholder: "Selecciona al integrante responsable", OptionsSource: "teamMembers"},
			{ID: "rol_investigador_principal", Type: models.FieldTypeSelect, Label: "Investigador(a) principal:", Placeholder: "Selecciona al integrante responsable", OptionsSource: "teamMembers"},
			{ID: "rol_investigador_campo", Type: models.FieldTypeSelect, Label: "Investigador(a) de campo:", Placeholder: "Selecciona al integrante responsable", OptionsSource: "teamMembers"},
			{ID: "rol_disenador", Type: models.FieldTypeSelect, Label: "Disenador(a)/Arquitecto(a):", Placeholder: "Selecciona al integrante responsable", OptionsSource: "teamMembers"},
			{ID: "rol_comunicador", Type: models.FieldTypeSelect, Label: "Comunicador(a)/Portavoz:", Placeholder: "Selecciona al integrante responsable", OptionsSource: "teamMembers"},
			{ID: "rol_escribano", Type: models.FieldTypeSelect, Label: "Escribano(a)/Secretario(a):", Placeholder: "Selecciona al integrante responsable", OptionsSource: "teamMembers"},
			{ID: "rol_guardian_materiales", Type: models.FieldTypeSelect, Label: "Guardian de materiales:", Placeholder: "Selecciona al integrante responsable", OptionsSource: "teamMembers"},
			{ID: "header_indagacion", Type: models.FieldTypeHeader, Text: "Seccion 2: Indagacion inicial (lluvia de ideas)"},
			{ID: "observaciones_comunidad", Type: models.FieldTypeTextarea, Label: "Anoten los problemas o hechos relacionados con el agua que conocen o investigaron en su comunidad:", Placeholder: "Ej: La calle se inunda, falta el agua, las pipas cuestan dinero..."},
			{ID: "header_preguntas", Type: models.FieldTypeHeader, Text: "Seccion 3: El puente a las matematicas"},
			{ID: "info_preguntas", Type: models.FieldTypeInfo, Text: "Elijan 3 de sus observaciones y transformenlas en preguntas que se puedan medir o contar."},
			{ID: "pregunta_1", Type: models.FieldTypeTextarea, Label: "Pregunta de investigacion 1:", Placeholder: "Ej: Cuantos litros de agua se acumulan por metro cuadrado?", AITask: "researchQuestion", AIPrompt: "Evalua si la pregunta de investigacion es medible, clara y conecta con el cuidado del agua. Propon mejoras concretas."},
			{ID: "pregunta_2", Type: models.FieldTypeTextarea, Label: "Pregunta de investigacion 2:", Placeholder: "Ej: Cual es el costo promedio de una pipa para una familia?", AITask: "researchQuestion", AIPrompt: "Evalua si la pregunta de investigacion es medible, clara y conecta con el cuidado del agua. Propon mejoras concretas."},
			{ID: "pregunta_3", Type: models.FieldTypeTextarea, Label: "Pregunta de investigacion 3:", Placeholder: "Escriban su tercera pregunta medible", AITask: "researchQuestion", AIPrompt: "Evalua si la pregunta de investigacion es medible, clara y conecta con el cuidado del agua. Propon mejoras concretas."},
		},
	},
	{
		ID:          2,
		Title:       "Mision 2: Disenando nuestro plan de ataque",
		Description: "Crearemos un plan detallado para investigar nuestra pregunta y recolectar los datos necesarios.",
		Icon:        "PlanIcon",
		Fields: []models.FormField{
			{ID: "header_pregunta_investigacion", Type: models.FieldTypeHeader, Text: "Seccion 1: Nuestra pregunta de investigacion"},
			{ID: "pregunta_elegida_m1", Type: models.FieldTypeTextarea, Label: "Transcriban aqui la pregunta que eligieron de la Mision 1:", Placeholder: "Copien la pregunta seleccionada por el equipo.", AITask: "researchQuestion", AIPrompt: "Evalua si la pregunta seleccionada mantiene claridad y enfoque. Sugiere ajustes para hacerla mas precisa y medible."},
			{ID: "pregunta_refinada", Type: models.FieldTypeTextarea, Label: "Ahora, haganla mas especifica y medible (que van a medir o contar exactamente?):", Placeholder: "Ej: Cuantos litros de agua se estancan y que area en m2 cubre el charco?", AITask: "researchQuestion", AIPrompt: "Evalua si la version refinada de la pregunta es especifica, medible y accionable. Propon ajustes en caso necesario."},
			{ID: "header_plan_accion", Type: models.FieldTypeHeader, Text: "Seccion 2: El plan de accion"},
			{ID: "info_plan_accion", Type: models.FieldTypeInfo, Text: "Definan las acciones, materiales y responsables para su investigacion."},
			{ID: "accion_1", Type: models.FieldTypeText, Label: "Accion 1 - Que haremos?", Placeholder: "Ej: Medir el area del charco."},
			{ID: "materiales_1", Type: models.FieldTypeText, Label: "Accion 1 - Materiales a utilizar", Placeholder: "Ej: Cinta metrica, gis."},
			{ID: "rol_1", Type: models.FieldTypeSelect, Label: "Accion 1 - Quien lidera?", Placeholder: "Selecciona al integrante responsable", OptionsSource: "teamMembers"},
			{ID: "tiempo_1", Type: models.FieldTypeText, Label: "Accion 1 - Tiempo estimado", Placeholder: "Ej: 15 min."},
			{ID: "indicador_1", Type: models.FieldTypeText, Label: "Accion 1 - Como sabremos que lo logramos?", Placeholder: "Ej: Tener las medidas en metros anotadas."},
			{ID: "accion_2", Type: models.FieldTypeText, Label: "Accion 2 - Que haremos?", Placeholder: "Ej: Recolectar muestras para medir profundidad."},
			{ID: "materiales_2", Type: models.FieldTypeText, Label: "Accion 2 - Materiales a utilizar", Placeholder: "Ej: 3 vasos de plastico, regla."},
			{ID: "rol_2", Type: models.FieldTypeSelect, Label: "Accion 2 - Quien lidera?", Placeholder: "Selecciona al integrante responsable", OptionsSource: "teamMembers"},
			{ID: "tiempo_2", Type: models.FieldTypeText, Label: "Accion 2 - Tiempo estimado", Placeholder: "Ej: 10 min."},
			{ID: "indicador_2", Type: models.FieldTypeText, Label: "Accion 2 - Como sabremos que lo logramos?", Placeholder: "Ej: Tener 3 mediciones de profundidad en cm."},
			{ID: "header_matematicas", Type: models.FieldTypeHeader, Text: "Seccion 3: Las matematicas"},
			{ID: "herramientas_matematicas", Type: models.FieldTypeCheckbox, Label: "Marquen las herramientas matematicas que van a utilizar:", Options: []string{"Conteos", "Promedios", "Mediciones", "Porcentajes", "Op. basicas", "Tablas/Graficas"}},
			{ID: "header_comunicacion", Type: models.FieldTypeHeader, Text: "Seccion 4: Comunicando descubrimientos"},
			{ID: "info_maqueta", Type: models.FieldTypeInfo, Text: "Recuerden que la maqueta del experimento o solucion es obligatoria."},
			{ID: "metodo_comunicacion", Type: models.FieldTypeRadio, Label: "Elijan como van a comunicar los hallazgos de su maqueta:", Options: []string{"Infografia", "Video corto", "Presentacion", "Exposicion"}},
			{ID: "header_valores", Type: models.FieldTypeHeader, Text: "Seccion 5: Valores en accion"},
			{ID: "valor_equipo", Type: models.FieldTypeSelect, Label: "Como equipo, elijan el valor mas importante que necesitaran para esta mision:", Options: []string{"Paciencia", "Comunicacion", "Respeto", "Colaboracion", "Creatividad"}},
		},
	},
	{
		ID:          3,
		Title:       "Mision 3: Laboratorio de hidraulica urbana",
		Description: "Manos a la obra: construyan, experimenten y documenten su maqueta.",
		Icon:        "ExperimentIcon",
		Fields: []models.FormField{
			{ID: "info_m3_intro", Type: models.FieldTypeInfo, Text: "En esta fase pasaran de la planificacion a la accion. Construiran sus modelos y los pondran a prueba para generar sus propios datos."},
			{ID: "header_diseno", Type: models.FieldTypeHeader, Text: "Momento 1: Diseno y calculo (La mesa del arquitecto)"},
			{ID: "boceto_maqueta", Type: models.FieldTypeFile, Label: "Diseno del boceto: Suban una foto clara del boceto detallado de su maqueta."},
			{ID: "calculos_previos", Type: models.FieldTypeTextarea, Label: "Calculos y dimensiones: Anoten aqui los calculos de area y volumen que realizaron para planificar su maqueta.", Placeholder: "Ej: Calle 50cm x 20cm. Volumen estimado de agua: 500 ml."},
			{ID: "variables_medir", Type: models.FieldTypeTextarea, Label: "Variables a medir: Definan las variables que observaran durante la simulacion.", Placeholder: "Ej: Altura del agua (cm) cada 10 segundos."},
			{ID: "header_construccion", Type: models.FieldTypeHeader, Text: "Momento 2: Construccion (Manos a la obra)"},
			{ID: "materiales_utilizados", Type: models.FieldTypeTextarea, Label: "Materiales utilizados:", Placeholder: "Enumera los materiales reciclados o comprados que usaron."},
			{ID: "foto_maqueta_final", Type: models.FieldTypeFile, Label: "Maqueta terminada: Suban una o varias fotos de su maqueta."},
			{ID: "header_simulacion", Type: models.FieldTypeHeader, Text: "Momento 3: La simulacion (El dia de la inundacion)"},
			{ID: "info_error_inteligente", Type: models.FieldTypeInfo, Text: "Si la maqueta tiene fugas o algo no sale como esperaban, no es un fracaso. Registren los datos y aprendan de ellos."},
			{ID: "cantidad_agua_simulacion", Type: models.FieldTypeText, Label: "Cantidad de agua utilizada en la simulacion (ml):", Placeholder: "Ej: 1500"},
			{ID: "registro_resultados", Type: models.FieldTypeTextarea, Label: "Registro de resultados:", Placeholder: "Describe cada prueba, tiempos, medidas y observaciones."},
			{ID: "foto_video_simulacion", Type: models.FieldTypeFile, Label: "Evidencia de la simulacion: Foto o video corto (max 1 minuto)."},
			{ID: "conclusiones_experimento", Type: models.FieldTypeTextarea, Label: "Conclusiones del experimento:", Placeholder: "Que aprendieron? Que cambiarias en la siguiente iteracion?"},
		},
	},
}

var projects = []ProjectDefinition{
	{
		ID:      "project1",
		Title:   "Enfermedades relacionadas con el agua",
		Mission: "Investigar la relacion entre agua contaminada y enfermedades para crear una campana preventiva basada en datos.",
		Summary: "Analizan casos de enfermedades, construyen un modelo educativo y crean una campana de prevencion.",
		Color:   "#38bdf8",
		Modules: []models.ModuleDefinition{
			{
				ID:          110,
				Title:       "P1 - Fase 1: Indagacion enfocada",
				Description: "Identifiquen la pregunta central sobre salud y agua.",
				Icon:        "PlanIcon",
				Fields: []models.FormField{
					{ID: "p1_f1_info", Type: models.FieldTypeInfo, Text: "Revisa tu bitacora y selecciona la pregunta principal relacionada con enfermedades y agua estancada."},
					{ID: "p1_f1_pregunta", Type: models.FieldTypeTextarea, Label: "Pregunta principal sobre salud y agua:", Placeholder: "Escribe la pregunta que eligieron."},
					{ID: "p1_f1_fuentes", Type: models.FieldTypeTextarea, Label: "Fuentes que consultaran para responderla:", Placeholder: "Menciona centros de salud, noticias o entrevistas planeadas."},
				},
			},
			{
				ID:          111,
				Title:       "P1 - Fase 2: Epidemiologia en accion",
				Description: "Recolecten y analicen datos sobre enfermedades relacionadas con el agua.",
				Icon:        "ExperimentIcon",
				Fields: []models.FormField{
					{ID: "p1_f2_tabla", Type: models.FieldTypeTextarea, Label: "Resumen de su tabla de casos mensuales:", Placeholder: "Describe los datos que registraron en la tabla (mes y numero de casos)."},
					{ID: "p1_f2_grafica", Type: models.FieldTypeFile, Label: "Evidencia de su grafica de lineas (foto o captura)."},
					{ID: "p1_f2_patrones", Type: models.FieldTypeTextarea, Label: "Patrones observados en la grafica:", Placeholder: "Ej: Los casos aumentan en meses de lluvia."},
					{ID: "p1_f2_porcentajes", Type: models.FieldTypeTextarea, Label: "Calculos de porcentaje de aumento y tasa de incidencia:", Placeholder: "Incluye los valores que obtuvieron y explica que significan."},
				},
			},
			{
				ID:          112,
				Title:       "P1 - Fase 3: Maqueta educativa",
				Description: "Construyan el modelo que explique el problema.",
				Icon:        "WaterDropIcon",
				Fields: []models.FormField{
					{ID: "p1_f3_diseno", Type: models.FieldTypeTextarea, Label: "Describe el diseno de su modelo 3D o diorama:", Placeholder: "Que elementos incluye y que representa cada uno?"},
					{ID: "p1_f3_materiales", Type: models.FieldTypeTextarea, Label: "Materiales utilizados en la maqueta:", Placeholder: "Lista de materiales reciclados o escolares."},
					{ID: "p1_f3_evidencia", Type: models.FieldTypeFile, Label: "Foto de la maqueta terminada:"},
				},
			},
			{
				ID:          113,
				Title:       "P1 - Fase 4: Infografia preventiva",
				Description: "Disenando la campana de prevencion.",
				Icon:        "PlanIcon",
				Fields: []models.FormField{
					{ID: "p1_f4_guion", Type: models.FieldTypeTextarea, Label: "Plan para la infografia:", Placeholder: "Describe el titulo, dato impactante, causa y soluciones que incluiran."},
					{ID: "p1_f4_datos", Type: models.FieldTypeTextarea, Label: "Datos de su investigacion que usaran en la campana:", Placeholder: "Ej: El 40% de los casos ocurren en temporada de lluvias."},
					{ID: "p1_f4_evidencia", Type: models.FieldTypeFile, Label: "Foto o captura de la infografia terminada:"},
				},
			},
		},
	},
	{
		ID:      "project2",
		Title:   "Cosecha de agua de lluvia",
		Mission: "Disenar un sistema de captacion de lluvia y calcular cuanta agua puede aprovechar una familia.",
		Summary: "Miden superficies de captacion, calculan volumenes y construyen un prototipo de colector.",
		Color:   "#34d399",
		Modules: []models.ModuleDefinition{
			{
				ID:          120,
				Title:       "P2 - Fase 1: El potencial de nuestro techo",
				Description: "Midan el area de captacion y estimen el volumen de lluvia aprovechable.",
				Icon:        "PlanIcon",
				Fields: []models.FormField{
					{ID: "p2_f1_area", Type: models.FieldTypeText, Label: "Area de captacion medida (m2):", Placeholder: "Ej: 45"},
					{ID: "p2_f1_precipitacion", Type: models.FieldTypeText, Label: "Precipitacion mensual promedio investigada (mm):", Placeholder: "Ej: 120"},
					{ID: "p2_f1_volumen", Type: models.FieldTypeTextarea, Label: "Calculo del volumen captable (litros):", Placeholder: "Muestren la operacion: area x precipitacion."},
				},
			},
			{
				ID:          121,
				Title:       "P2 - Fase 2: Diseno del colector",
				Description: "Dibujen y calculen su sistema de captacion a escala.",
				Icon:        "ExperimentIcon",
				Fields: []models.FormField{
					{ID: "p2_f2_boceto", Type: models.FieldTypeFile, Label: "Boceto del sistema de captacion (foto):"},
					{ID: "p2_f2_materiales", Type: models.FieldTypeTextarea, Label: "Materiales y costos estimados:", Placeholder: "Ej: Canaleta 3m, tambo de 200 litros, malla..."},
					{ID: "p2_f2_filtrado", Type: models.FieldTypeRadio, Label: "Metodo de filtrado elegido:", Options: []string{"Malla simple", "Filtro de arena", "Primera descarga", "Combinado"}},
				},
			},
			{
				ID:          122,
				Title:       "P2 - Fase 3: Prototipo y prueba",
				Description: "Construyan el prototipo y midan su rendimiento real.",
				Icon:        "WaterDropIcon",
				Fields: []models.FormField{
					{ID: "p2_f3_foto", Type: models.FieldTypeFile, Label: "Foto del prototipo terminado:"},
					{ID: "p2_f3_pruebas", Type: models.FieldTypeTextarea, Label: "Registro de pruebas (agua vertida vs agua captada):", Placeholder: "Prueba 1: 2000 ml vertidos, 1700 ml captados..."},
					{ID: "p2_f3_eficiencia", Type: models.FieldTypeText, Label: "Eficiencia calculada (%):", Placeholder: "Ej: 85"},
				},
			},
			{
				ID:          123,
				Title:       "P2 - Fase 4: Propuesta a la comunidad",
				Description: "Presenten el ahorro que su sistema lograria en casa.",
				Icon:        "PlanIcon",
				Fields: []models.FormField{
					{ID: "p2_f4_ahorro", Type: models.FieldTypeTextarea, Label: "Ahorro mensual estimado para una familia (litros y pesos):", Placeholder: "Comparen con el costo de una pipa."},
					{ID: "p2_f4_presentacion", Type: models.FieldTypeFile, Label: "Evidencia de su presentacion o cartel:"},
				},
			},
		},
	},
	{
		ID:      "project3",
		Title:   "El costo del agua",
		Mission: "Analizar cuanto pagan las familias por el agua y proponer habitos que reduzcan el gasto.",
		Summary: "Encuestan a familias, grafican consumos y costos, y proponen un plan de ahorro con metas medibles.",
		Color:   "#818cf8",
		Modules: []models.ModuleDefinition{
			{
				ID:          130,
				Title:       "P3 - Fase 1: La encuesta del agua",
				Description: "Disenen y apliquen una encuesta sobre consumo y gasto.",
				Icon:        "PlanIcon",
				Fields: []models.FormField{
					{ID: "p3_f1_preguntas", Type: models.FieldTypeTextarea, Label: "Preguntas de su encuesta:", Placeholder: "Ej: Cuantas pipas compran al mes? Cuanto pagan?"},
					{ID: "p3_f1_muestra", Type: models.FieldTypeText, Label: "Numero de familias encuestadas:", Placeholder: "Ej: 12"},
				},
			},
			{
				ID:          131,
				Title:       "P3 - Fase 2: Numeros que hablan",
				Description: "Organicen los datos y calculen promedios y porcentajes.",
				Icon:        "ExperimentIcon",
				Fields: []models.FormField{
					{ID: "p3_f2_tabla", Type: models.FieldTypeTextarea, Label: "Resumen de la tabla de resultados:", Placeholder: "Gasto minimo, maximo y promedio por familia."},
					{ID: "p3_f2_grafica", Type: models.FieldTypeFile, Label: "Foto de su grafica de barras o circular:"},
					{ID: "p3_f2_hallazgo", Type: models.FieldTypeTextarea, Label: "El hallazgo mas importante de sus datos:", Placeholder: "Ej: Las familias sin toma gastan 3 veces mas."},
				},
			},
			{
				ID:          132,
				Title:       "P3 - Fase 3: Maqueta del ciclo del gasto",
				Description: "Construyan un modelo que muestre a donde se va el dinero del agua.",
				Icon:        "WaterDropIcon",
				Fields: []models.FormField{
					{ID: "p3_f3_diseno", Type: models.FieldTypeTextarea, Label: "Descripcion de la maqueta:", Placeholder: "Que representa cada parte del modelo?"},
					{ID: "p3_f3_evidencia", Type: models.FieldTypeFile, Label: "Foto de la maqueta terminada:"},
				},
			},
			{
				ID:          133,
				Title:       "P3 - Fase 4: Plan de ahorro familiar",
				Description: "Propongan metas de ahorro medibles para las familias encuestadas.",
				Icon:        "PlanIcon",
				Fields: []models.FormField{
					{ID: "p3_f4_metas", Type: models.FieldTypeTextarea, Label: "Tres metas de ahorro con numeros:", Placeholder: "Ej: Reducir 20% el gasto mensual reutilizando agua de lavado."},
					{ID: "p3_f4_evidencia", Type: models.FieldTypeFile, Label: "Evidencia del plan compartido con las familias:"},
				},
			},
		},
	},
}

var projectIndex = func() map[string]*ProjectDefinition {
	index := make(map[string]*ProjectDefinition, len(projects))
	for i := range projects {
		index[projects[i].ID] = &projects[i]
	}
	return index
}()

// BaseModules returns the fixed base curriculum in ascending ID order.
func BaseModules() []models.ModuleDefinition {
	out := make([]models.ModuleDefinition, len(baseModules))
	copy(out, baseModules)
	return out
}

// BaseModuleCount reports the number of base curriculum modules.
func BaseModuleCount() int {
	return len(baseModules)
}

// IsBaseModuleID reports whether the ID belongs to the base curriculum.
func IsBaseModuleID(id int) bool {
	for _, module := range baseModules {
		if module.ID == id {
			return true
		}
	}
	return false
}

// Projects lists the selectable project tracks.
func Projects() []ProjectDefinition {
	out := make([]ProjectDefinition, len(projects))
	copy(out, projects)
	return out
}

// ProjectByID looks up a project track definition.
func ProjectByID(id string) (*ProjectDefinition, bool) {
	project, ok := projectIndex[id]
	return project, ok
}

// ModulesFor returns the ordered module list for a team: the base curriculum
// followed by the selected project's extension modules. Unknown or empty
// project IDs fail closed to the base curriculum only.
func ModulesFor(projectID string) []models.ModuleDefinition {
	modules := BaseModules()
	project, ok := projectIndex[projectID]
	if !ok {
		return modules
	}
	return append(modules, project.Modules...)
}
