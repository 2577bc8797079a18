package category

// catalogEntry is one line of the built-in UCAD chart of accounts.
type catalogEntry struct {
	Code        string
	Label       string
	Type        string
	Description string
}

// Catalog is the UCAD nomenclature the categories table is seeded from.
// Codes starting with 7 are recettes, codes starting with 6 are
// depenses de fonctionnement and codes starting with 2 are
// investissements (booked as depenses).
var Catalog = []catalogEntry{
	// Recettes
	{"70011", "Droits d'inscription administrative", TypeRecette, "Droits d'inscription administrative"},
	{"70012", "Droits d'inscription pédagogique", TypeRecette, "Droits d'inscription pédagogique"},
	{"7002", "Droits d'examen", TypeRecette, "Droits d'examen"},
	{"7003", "Droits de bibliothèque", TypeRecette, "Droits de bibliothèque"},
	{"7065", "Produits des cessions de service", TypeRecette, "Produits des cessions de service : fonction de service"},
	{"70651", "Produits des cessions de service : Quote Part", TypeRecette, "Produits des cessions de service : Quote Part"},
	{"70652", "Produits des cessions de service : Instituts Rattachés", TypeRecette, "Produits des cessions de service : Instituts Rattachés"},
	{"7066", "Produits des entrées dans les musées", TypeRecette, "Produits des entrées dans les musées"},
	{"7067", "Produits de la vente des publications", TypeRecette, "Produits de la vente des publications"},
	{"7181", "Subventions accordées par l'État", TypeRecette, "Subventions d'exploitation accordées par l'État"},
	{"7583", "Produits du domaine immobilier", TypeRecette, "Produits du domaine immobilier"},
	{"75861", "Produits divers exceptionnels", TypeRecette, "Produits divers accidentels ou exceptionnels Rectorat et Instituts rattachés"},
	{"75862", "Report à nouveau Instituts Rattachés", TypeRecette, "Report à nouveau Instituts Rattachés"},
	{"75868", "Quote part du report Rectorat", TypeRecette, "Quote part du report Rectorat affecté au fonctionnement"},

	// Depenses: achats
	{"60411", "Consommables informatiques", TypeDepense, "Consommables informatiques"},
	{"60412", "Produits pharmaceutiques", TypeDepense, "Produits pharmaceutiques"},
	{"60413", "Produits de laboratoire", TypeDepense, "Produits de laboratoire"},
	{"6043", "Produits d'entretien", TypeDepense, "Produits d'entretien"},
	{"6047", "Fournitures de bureau", TypeDepense, "Fournitures de bureau"},
	{"60481", "Achats imprimés et cartes", TypeDepense, "Achats imprimés et cartes"},
	{"60511", "Eau", TypeDepense, "Fournitures non stockables - Eau"},
	{"60512", "Eau minérale et autres boissons", TypeDepense, "Eau minérale et autres boissons"},
	{"6052", "Électricité", TypeDepense, "Fournitures non stockables - Électricité"},
	{"60531", "Carburant", TypeDepense, "Carburant"},
	{"60532", "Lubrifiants", TypeDepense, "Lubrifiants"},
	{"6056", "Achat de petits matériels et outillages", TypeDepense, "Achat de petits matériels et outillages"},
	{"6057", "Achat d'études et de prestations de services", TypeDepense, "Achat d'études et de prestations de services"},
	{"6058", "Achats de travaux, matériels et équipements", TypeDepense, "Achats de travaux, matériels et équipements"},

	// Depenses: transports
	{"614", "Transports du Personnel", TypeDepense, "Transports du Personnel"},
	{"616", "Transport de plis", TypeDepense, "Transport de plis"},
	{"61811", "Voyages d'études", TypeDepense, "Voyages d'études"},
	{"61812", "Autres voyages et déplacements", TypeDepense, "Autres voyages et déplacements"},
	{"61813", "Voyages administratifs", TypeDepense, "Voyages administratifs"},
	{"6183", "Transports administratifs", TypeDepense, "Transports administratifs"},
	{"6184", "Participation aux frais de transport", TypeDepense, "Participation aux frais de transport"},

	// Depenses: services exterieurs
	{"622", "Location et Charges Locatives", TypeDepense, "Location et Charges Locatives"},
	{"62411", "Entretien bâtiments", TypeDepense, "Entretien, réparations et maintenance de bâtiments"},
	{"62412", "Entretien stade", TypeDepense, "Entretien, réparations et maintenance du stade"},
	{"62413", "Entretien campus", TypeDepense, "Entretien, réparations et maintenance du campus"},
	{"62421", "Entretien meubles", TypeDepense, "Entretien et réparation des meubles"},
	{"62422", "Entretien matériels de transport", TypeDepense, "Entretien et réparation des matériels de transport"},
	{"6243", "Maintenance", TypeDepense, "Maintenance"},
	{"6252", "Assurances matériels de transport", TypeDepense, "Assurances matériels de transport"},
	{"6258", "Autres primes d'assurance", TypeDepense, "Autres primes d'assurance"},
	{"6261", "Études et recherche", TypeDepense, "Études et recherche"},
	{"6265", "Documentation générale", TypeDepense, "Documentation générale"},
	{"6266", "Documentation technique", TypeDepense, "Documentation technique"},
	{"6271", "Annonces et insertions", TypeDepense, "Annonces et insertions"},
	{"6272", "Catalogues et imprimés publicitaires", TypeDepense, "Catalogues et imprimés publicitaires"},
	{"6275", "Publications", TypeDepense, "Publications"},
	{"6277", "Frais de colloques, séminaires, conférences", TypeDepense, "Frais de colloques, séminaires, conférences"},
	{"6281", "Frais de téléphone", TypeDepense, "Frais de téléphone"},
	{"6282", "Achats de cartes de téléphone", TypeDepense, "Achats de cartes de téléphone"},
	{"6283", "Frais de télécopie", TypeDepense, "Frais de télécopie"},
	{"6284", "Internet ADSL", TypeDepense, "Internet ADSL"},

	// Depenses: personnel
	{"66111", "Appointements, salaires et commissions PATS", TypeDepense, "Appointements, salaires et commissions versés aux PATS"},
	{"66112", "Appointements, salaires et commissions PER", TypeDepense, "Appointements, salaires et commissions versés aux PER"},
	{"66113", "Appointements contractuels", TypeDepense, "Appointements, salaires et commissions versés aux contractuels"},
	{"66171", "Habillement", TypeDepense, "Habillement"},
	{"661811", "Heures supplémentaires PATS", TypeDepense, "Heures supplémentaires PATS"},
	{"661812", "Heures complémentaires PER", TypeDepense, "Heures complémentaires PER"},
	{"6634", "Indemnités et primes PATS", TypeDepense, "Indemnités et primes diverses versées PATS"},
	{"6635", "Indemnités et primes PER", TypeDepense, "Indemnités et primes diverses PER"},
	{"66411", "Charges sociales PATS", TypeDepense, "Charges sociales et cotisations patronales PATS"},
	{"66412", "Charges sociales PER", TypeDepense, "Charges sociales et cotisations patronales PER"},
	{"6685", "Frais médicaux", TypeDepense, "Frais médicaux"},

	// Investissements
	{"211", "Frais de recherche et de développement", TypeDepense, "Frais de recherche et de développement"},
	{"212", "Brevets, licences, concessions", TypeDepense, "Brevets, licences, concessions et droits similaires"},
	{"213", "Logiciels", TypeDepense, "Logiciels"},
	{"2313", "Bâtiments administratifs et commerciaux", TypeDepense, "Bâtiments administratifs et commerciaux"},
	{"2351", "Installations Générales", TypeDepense, "Installations Générales"},
	{"2352", "Installations des Bâtiments Administratifs", TypeDepense, "Installations des Bâtiments Administratifs"},
	{"2353", "Installations des Bâtiments Pédagogiques", TypeDepense, "Installations des Bâtiments Pédagogiques"},
	{"2441", "Matériel de bureau", TypeDepense, "Matériel de bureau"},
	{"2442", "Matériel informatique", TypeDepense, "Matériel informatique"},
	{"2443", "Matériel bureautique", TypeDepense, "Matériel bureautique"},
	{"2444", "Mobilier de bureau", TypeDepense, "Mobilier de bureau"},
	{"2447", "Matériel et Mobilier des logements", TypeDepense, "Matériel et Mobilier des logements du personnel"},
	{"2451", "Matériel automobile", TypeDepense, "Matériel automobile"},
	{"2458", "Autres matériels de transport", TypeDepense, "Autres matériels de transport (vélos, mobylettes, motos)"},
	{"2481", "Collections et œuvres d'art", TypeDepense, "Collections et œuvres d'art"},
	{"2482", "Matériels de cours et de TP", TypeDepense, "Matériels de cours et de TP"},
	{"2484", "Matériels et équipements spécifiques", TypeDepense, "Matériels et équipements spécifiques"},
}
