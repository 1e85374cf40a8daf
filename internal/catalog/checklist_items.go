package catalog

var hsmBalerChecklist = []string{
	"Verificarea si curatarea cutitelor de forfecare",
	"Verificare șpalt tăiere placă presare",
	"Schimbare lichid hidraulic",
	"Curățare filtru de retur",
	"Schimbare filtru de ulei",
	"Lubrifiere role ghidare placă de presare",
	"Curățare și gresare role capete de ac",
	"Curățare și verificare electromotoare",
	"Verificare și strângere cupluri",
	"Verificare / Curatare cai de rulare / dispozitive de evacuare cai de rulare",
	"Verificarea discurilor de rasucire",
	"Curatare si lubrifiere Dispozitiv de Expulzare a Marginilor de Taiere",
}

var mac107BalerChecklist = []string{
	"Curățat cartușul filtrului de aer de pe rezervor cu aer comprimat",
	"Curățat radiatorul a schimbătorului de căldură",
	"Verificat tensionarea lanțului de pe căruciorului acelor",
	"Verificat nivelul de ulei din rezervor",
	"Verificati nivelul de ulei din reductoare",
	"Lubrifiat zonele de rulare a sârmei de legare",
	"Gresat rotile inferioare si rolele de ghidare ale capului de presare (\"berbec\")",
	"Gresat căruciorul acelor și acele",
	"Spălat cu solvent și uscați bine cu aer comprimat cartușul filtrului de ulei.",
	"Curățat cartușul filtrului de aer cu aer comprimat.",
	"Curățat tabloul de comanda (opriti alimentarea cu energie electrica inaine de deschidere panou electric)",
	"Verificat garnitura colectorului de ulei de pe capul căruciorului cilindrului",
	"Verificat distanța dintre lamele căruciorului și cele ale traversei: trebuie să fie de aprox 3mm",
	"Verificat strângerea cârligelor de răsucire a sârmei.",
	"Verificat ca lamele de tăiere a sârmei taie corect, altfel ajustați cele două suporturi ale lamelor folosind cele trei șuruburi de ajustare.",
	"Verificare rolele de ghidare laterale si verticale ale căruciorului se rotesc liber fără blocaje",
	"Inlocuirea uleiului hidraulic",
}

var anisBalerChecklist = []string{
	"Controlați calitatea uleiului Înlocuiți filtrul de ulei / 2000 ore",
	"Înlocuiți filtrul de ulei si filtru aerisitorului / 2000 ore",
	"Verificati presiunea maximă a pompei / 2000 ore",
	"Schimbati filtrul de presiune de pe conducta de retur / 2000 ore",
	"Verificare lama exterioară si interioara de tăiere a firului / 40 ore",
	"Verificare capul acului de împingere/ 40 ore",
	"Tija acului de tragere / 40 ore",
	"Rolele acului / 40 ore",
	"Ungerea bucșei acului / 40 ore",
	"Întrerupătorul de proximitate - superior si inferior / 40 ore",
	"Curățarea capului acului / 40 ore",
	"Fixarea corpului acului / 40 ore",
	"Pierderi de ulei / 40 ore",
	"Ghidajul lateral (superior) - stânga si dreapta berbec/ 40 ore",
	"Clapeta superioară - racletă; / 40 ore",
	"Racleta frontală / 40 ore",
	"Racletele dintre role / 40 ore",
	"Clapeta posterioară - racletă / 40 ore",
	"Fantele pentru fir (ac) / 40 ore",
	"Spațiul de sub berbec",
	"Spațiu stânga - dreapta / 40 ore",
	"Rolele berbecului (lubrifiere) / 40 ore",
	"Lamele de forfecare (spațiu) / 40 ore",
	"Flanșa de fixare a tijei",
	"Strângerea și sudura flanșei cilindru principal / 320 ore",
	"Bolțurile de fixare a cilindrilor (lubrifiere) cilindru principal / 320 ore",
	"Fixarea și pierderile pe la bucșa de capăt cilindru principal / 320 ore",
	"Suprafața tijei cilindru principal / 320 ore",
	"Sudura platformei la cilindru principal / 320 ore",
	"Conexiunea posterioară SAE a conductei. / 320 ore",
	"Conexiunea frontală SAE a conductei. / 320 ore",
	"Zgomotul la retragerea completă a cilindrului. / 320 ore",
	"Bolțurile de basculare canal. / 40 ore",
	"Brațele de strângere . / 40 ore",
	"Cilindri - fixare și scurgeri / 40 ore",
	"Bolțuri (lubrifiere) / 40 ore",
	"Bolțul cilindrului de tensionare- verificare. / 960 ore",
	"Fixarea și pierderile pe la bucșa de capăt a cilindrului de tensionare. / 960 ore",
	"Suprafața tijei cilindru de tensionare",
	"Sudura platformei / 960 ore",
	"Rola de bază D 100 mm ghidaje fir / 40 ore",
	"Rolele acelor (sistemul de legare) / 40 ore",
	"Rolele laterale (bara mobilă) / 40 ore",
	"Suportul bobinei de fir - fixare / 40 ore",
	"Senzori optici - buncăr / 320 ore",
	"Verificare senzori poziția retrasă a berbeculu / 320 ore",
	"Verificare senzori poziția avansata (de legare) a berbeculu / 320 ore",
	"Verificare senzori poziția de forfecare a berbecului / mediana / retrasa a acelor / 320 ore",
	"Poziția acelor pentru tăierea firului / 320 ore",
	"Poziția frontală a acelor / 320 ore",
	"Poziția cârligelor de răsucire / 320 ore",
	"Contorul pentru lungimea balotului / 320 ore",
	"Ușa cu sistem de inter- blocare a buncărului",
	"Elementul de inter-blocare a sistemului automat de legare în poziția de operare / 500 ore",
	"Ușa cu sistem de inter-blocare din partea opusă sistemului de legare / 500 ore",
	"Elementele laterale fixe de protecție a berbecului / 500 ore",
	"Capacele fixe superioare ale berbecului / 500 ore",
	"Capacele laterale fixe ale sistemului de legare / 500 ore",
	"Capacul posterior al sistemului de legare / 500 ore",
	"Sistemul de schimb cu cheie / 500 ore",
}

var palBalerChecklist = []string{
	"Curățat cartușul filtrului de aer de pe rezervor cu aer comprimat",
	"Curățat radiatorul a schimbătorului de căldură",
	"Verificat tensionarea lanțului de pe căruciorului acelor",
	"Verificat nivelul de ulei din rezervor",
	"Verificati nivelul de ulei din reductoare",
	"Lubrifiat zonele de rulare a sârmei de legare",
	"Gresat rotile inferioare si rolele de ghidare ale capului de presare (\"berbec\")",
	"Gresat căruciorul acelor și acele",
	"Spălat cu solvent și uscați bine cu aer comprimat cartușul filtrului de ulei.",
	"Curățat cartușul filtrului de aer cu aer comprimat.",
	"Curățat tabloul de comanda (opriti alimentarea cu energie electrica inaine de deschidere panou electric)",
	"Verificat garnitura colectorului de ulei de pe capul căruciorului cilindrului",
	"Verificat distanța dintre lamele căruciorului și cele ale traversei: trebuie să fie de aprox 3mm",
	"Verificat strângerea cârligelor de răsucire a sârmei.",
	"Verificat ca lamele de tăiere a sârmei taie corect, altfel ajustați cele două suporturi ale lamelor folosind cele trei șuruburi de ajustare.",
	"Verificare rolele de ghidare laterale si verticale ale căruciorului se rotesc liber fără blocaje",
	"Inlocuirea uleiului hidraulic",
}

var conveyorChecklist = []string{
	"Starea si eficienta stergatoarelor / razuri ( intre covorul de banda si lamela stergatorului nu trebuie sa existe interstitii. Stergatorul trebuie sa fie usor tensionat pe banda )",
	"Starea fasiilor laterale de cauciuc ( h = 160 mm) ( nu trebuie sa fie desprinse din suruburi si nu trebuie sa aiba uzuri excesive care sa afecteze etansarea cu banda)",
	"Starea suprafetelor dintre tamburii de actionare-intoarcere si banda ( se inlatura materialele care au aderat intre tamburi si covorul de banda )",
	"Gresarea tamburilor de actionare-intoarcere",
	"Reglarea covorului de banda (centrare, intindere)",
	"Nivel ulei reductor",
	"Geometria structurii metalice",
	"Starea cordoanelor de sudura",
	"Strangerea tuturor suruburilor",
	"Verificarea tuturor rolelor , a covorului de banda, a fasiilor de cauciuc pt. etansare ( h= 160 mm), a tamburilor de actionare si intoarcere",
	"Schimbare ulei reductoare",
}

var ballisticSeparatorChecklist = []string{
	"Strangere suruburi la placile de strangere la cadru pivotant (cap 8.4.1)",
	"Strangere suruburi Padele",
	"Lubrifiere lagare",
	"Verificare stangere suruburi",
	"Verificare cabluri electrice",
	"Veficare comutator oprire de urgenta",
	"Verificare comutator usi",
	"Verificare cuplaj",
	"Verificare site grila de la Padele",
	"Curatare si verificare platformei de intretinere curente",
	"Verificare protectie de infasurare cadru pivotant",
	"Lucrari intretinere sistem electric de actionare",
}

var bagOpenerChecklist = []string{
	"Verificarea uzurilor si jocurilor cutitelor",
	"Verificati varfurile filetate si ghidajele",
	"Ungeti rotile pe ambele parti ale camelor. In functie de natura materialului de alimentare, rotile trebuies lubrifriate la fiecare 40 pana la 120 ore de lucru",
	"Inspectia vizuala a rotorului",
	"Curatirea rotorului",
	"Verificat controlul initierii vitezei rotorului",
	"Verificat nivelul de ulei din cuplaj SEW",
	"Verificat scurgerile motoreductorului",
	"Verificat turbo ambreiajul la scurgeri",
	"Verificat atasamentele pieptenului sa nu fie deteriorate",
	"Verificat uzura si deteriorarea cilindrilor",
	"Verificat etanseitatea sistemului hidraulic",
	"Verificat nivelul uleiului la vizorul transparent al agregatului",
	"Verificat uzura si ruperea cutitelor pieptenului",
}

var opticalSorterChecklist = []string{
	"Verificat funcționarea corectă a circuitului de siguranță",
	"Verificat şi, dacă este necesar,strangeti racordurile filetate",
	"Verificat conexiunilor electrice",
	"Efectuat insepctia vizuala a protectiei impotriva uzurii",
	"Indepartat acumularile de materiale si alte reziduuri",
	"Verificat senzorii usilor de protectie",
	"Verificat ecranul cu privire la orice mesaje de eroare.",
	"Curatat ecranul tactil",
	"Curatat schimbatorul de caldura daca este necesar.",
	"Efectuat insepectia vizuala a schimbatorului de caldura",
	"Indepartat praful si murdaria de pe geamurile scanerului",
	"Verificati starea lampilor cu halogen.",
	"Inspectat capacul senzorului EM",
	"Verificat functia de reglare a inaltimii senzor EM",
	"Indepartat reziduurile la bloc de supape si duze",
	"Curatat capcul barei cu duze",
	"Curatat spatiul dintre bara cu duze si transportor",
	"Curatati blocul de supape",
	"Efectuat o testare a supapelor",
	"Curatat duzele",
	"Verificat presiunea aerului",
	"Indepartat reziduurile de pe unitatile pneumatice",
	"Golit apa din rezervor",
	"Inlocuit filtrul de aer",
	"Indepartat reziduurile la sistemul de pozitionare a blocului de valve",
	"Efectuati o inspectie vizuala la sistemul de pozitionare a blocului de valve",
	"Masurati viteza benzii",
	"Calibrare VIS",
	"Calibrare NIR",
	"Calibrare DLA",
	"Calibrare EM",
}
