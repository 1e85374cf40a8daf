package catalog

import "ecolife/internal/models"

// HSM baler (line 2), manufacturer manual sections in parentheses
var hsmBalerTasks = []models.PreventiveTask{
	{Description: "Verificarea si curatarea cutitelor de forfecare (secțiunea9.2)", Frequency: 170},
	{Description: "Verificare șpalt tăiere placă presare (secțiunea 8.4.1)", Frequency: 170},
	{Description: "Schimbare lichid hidraulic (secțiunea 8.3.1)", Frequency: 2000},
	{Description: "Curățare filtru de retur (secțiunea 8.3.2)", Frequency: 1000},
	{Description: "Schimbare filtru de ulei", Frequency: 2000},
	{Description: "Lubrifiere role ghidare placă de presare (secțiunea 8.4.2)", Frequency: 40},
	{Description: "Curățare și gresare role capete de ac (secțiunea 9.3)", Frequency: 24},
	{Description: "Curățare și verificare electromotoare (secțiunea 9.4)", Frequency: 500},
	{Description: "Curatare perforator", Frequency: 170},
	{Description: "Lubrifiere perforator (secțiunea 8.8)", Frequency: 170},
	{Description: "Curățare și lubrifiere unitate de alunecare perforator (secțiunea 8.9)", Frequency: 170},
	{Description: "Verificare și strângere cupluri (secțiunea 8.2.4)", Frequency: 170},
	{Description: "Verificare / Curatare cai de rulare / dispozitive de evacuare cai de rulare", Frequency: 24},
	{Description: "Verificarea discurilor de rasucire", Frequency: 170},
	{Description: "Curatare si lubrifiere Dispozitiv de Expulzare a Marginilor de Taiere", Frequency: 500},
}

var mac107BalerTasks = []models.PreventiveTask{
	{Description: "Curățați cartușul filtrului de aer de pe rezervor cu aer comprimat", Frequency: 40},
	{Description: "Curățați radiatorul a schimbătorului de căldură", Frequency: 40},
	{Description: "Verificați tensionarea lanțului de pe căruciorului acelor", Frequency: 40},
	{Description: "Verificați nivelul de ulei din rezervor", Frequency: 40},
	{Description: "Verificați nivelul de ulei din reductoare", Frequency: 160},
	{Description: "Lubrifiați zonele de rulare a sârmei de legare", Frequency: 160},
	{Description: "Gresati rotile inferioare si rolele de ghidare ale capului de presare (\"berbec\")", Frequency: 160},
	{Description: "Gresați căruciorul acelor și acele", Frequency: 160},
	{Description: "Spălați cu solvent și uscați bine cu aer comprimat cartușul filtrului de ulei.", Frequency: 160},
	{Description: "Curățați cartușul filtrului de aer cu aer comprimat.", Frequency: 160},
	{Description: "Curățați tabloul de comanda (opriti alimentarea cu energie electrica inaine de deschidere panou electric)", Frequency: 160},
	{Description: "Verificați garnitura colectorului de ulei de pe capul căruciorului cilindrului", Frequency: 160},
	{Description: "Verificați distanța dintre lamele căruciorului și cele ale traversei: trebuie să fie de aprox 3mm", Frequency: 160},
	{Description: "Verificați strângerea cârligelor de răsucire a sârmei.", Frequency: 160},
	{Description: "Asigurați-vă că lamele de tăiere a sârmei taie corect, altfel ajustați cele două suporturi ale lamelor folosind cele trei șuruburi de ajustare.", Frequency: 160},
	{Description: "Verificare rolele de ghidare laterale si verticale ale căruciorului se rotesc liber fără blocaje", Frequency: 160},
	{Description: "Inlocuirea uleiului hidraulic", Frequency: 2000},
}

// Shared by conveyors and the magnetic and eddy-current separators
var conveyorLikeTasks = []models.PreventiveTask{
	{Description: "Starea si eficienta stergatoarelor ( intre covorul de banda si lamela stergatorului nu trebuie sa existe interstitii. Stergatorul trebuie sa fie usor tensionat pe banda )", Frequency: 40},
	{Description: "Starea fasiilor laterale de cauciuc ( h = 160 mm) ( nu trebuie sa fie desprinse din suruburi si nu trebuie sa aiba uzuri excesive care sa afecteze etansarea cu banda)", Frequency: 40},
	{Description: "Starea suprafetelor dintre tamburii de actionare-intoarcere si banda ( se inlatura materialele care au aderat intre tamburi si covorul de banda )", Frequency: 160},
	{Description: "Gresarea tamburilor de actionare-intoarcere", Frequency: 480},
	{Description: "Reglarea covorului de banda (centrare, intindere)", Frequency: 480},
	{Description: "Nivel ulei reductor", Frequency: 480},
	{Description: "Geometria structurii metalice", Frequency: 1000},
	{Description: "Starea cordoanelor de sudura", Frequency: 1000},
	{Description: "Strangerea tuturor suruburilor", Frequency: 1000},
	{Description: "Verificarea tuturor rolelor , a covorului de banda, a fasiilor de cauciuc pt. etansare ( h= 160 mm), a tamburilor de actionare si intoarcere", Frequency: 1000},
	{Description: "Schimbare ulei reductoare", Frequency: 4000},
}

var ballisticSeparatorTasks = []models.PreventiveTask{
	{Description: "Strangere suruburi la placile de strangere la cadru pivotant (cap 8.4.1)", Frequency: 20},
	{Description: "Strangere suruburi Padele (cap 8.4.2)", Frequency: 24},
	{Description: "Lubrifiere lagare (8.4.12)", Frequency: 40},
	{Description: "Verificare stangere suruburi (8.4.13)", Frequency: 160},
	{Description: "Verificare cabluri electrice (8.4.14)", Frequency: 160},
	{Description: "Veficare comutator oprire de urgenta (8.4.15)", Frequency: 160},
	{Description: "Verificare comutator usi (8.4.16)", Frequency: 160},
	{Description: "Verificare cuplaj (8.4.17)", Frequency: 160},
	{Description: "Verificare site grila de la Padele (8.4.20)", Frequency: 2000},
	{Description: "Curatare si verificare platformei de intretinere curente", Frequency: 2000},
	{Description: "Verificare protectie de infasurare cadru pivotant", Frequency: 2000},
	{Description: "Lucrari intretinere sistem electric de actionare", Frequency: 2000},
	{Description: "Verificare Vizuala toate componente (cap 8.4.3.)", Frequency: 24},
}

var bagOpenerTasks = []models.PreventiveTask{
	{Description: "Verificati varfurile filetate si ghidajele", Frequency: 24},
	{Description: "Ungeti rotile pe ambele parti ale camelor. In functie de natura materialului de alimentare, rotile trebuies lubrifriate la fiecare 40 pana la 120 ore de lucru", Frequency: 24},
	{Description: "Inspectia vizuala a rotorului", Frequency: 40},
	{Description: "Curatirea rotorului", Frequency: 500},
	{Description: "Verificati controlul initierii vitezei rotorului", Frequency: 40},
	{Description: "Verificati nivelul de ulei din cuplaj SEW", Frequency: 24},
	{Description: "Verificati scurgerile motoreductorului", Frequency: 24},
	{Description: "Verificati turbo ambreiajul la scurgeri", Frequency: 24},
	{Description: "Verificati atasamentele pieptenului sa nu fie deteriorate", Frequency: 24},
	{Description: "Verificati uzura si deteriorarea cilindrilor", Frequency: 12},
	{Description: "Verificati etanseitatea sistemului hidraulic", Frequency: 12},
	{Description: "Verificati nivelul uleiului la vizorul transparent al agregatului", Frequency: 12},
	{Description: "Verificati uzura si ruperea cutitelor pieptenului", Frequency: 24},
}

var opticalSorterTasks = []models.PreventiveTask{
	{Description: "Verificați funcționarea corectă a circuitului de siguranță", Frequency: 40},
	{Description: "Verificaţi şi, dacă este necesar,strangeti racordurile filetate", Frequency: 960},
	{Description: "Verificati conexiunile electrice", Frequency: 960},
	{Description: "Efectuati insepctia vizuala a protectiei impotriva uzurii", Frequency: 960},
	{Description: "Indepartati acumularile de materiale si alte reziduuri", Frequency: 24},
	{Description: "Verificati senzorii usilor de protectie", Frequency: 960},
	{Description: "Verificati ecranul cu privire la orice mesaje de eroare.", Frequency: 24},
	{Description: "Curatati ecranul tactil", Frequency: 160},
	{Description: "Curatati schimbatorul de caldura daca este necesar", Frequency: 40},
	{Description: "Efectuati insepctia vizuala a schimbatorului de caldura", Frequency: 40},
	{Description: "Indepartati praful si murdaria de pe geamurile scanerului", Frequency: 24},
	{Description: "Verificati starea lampilor cu halogen.", Frequency: 40},
	{Description: "Verificati starea modulelor Deep LAISER. Inlocuiti modulele defecte", Frequency: 40},
	{Description: "Inspectati capacul senzorului EM", Frequency: 960},
	{Description: "Verificati functia de reglare a inaltimii senzor EM", Frequency: 960},
	{Description: "Efectuati o testare a supapelor", Frequency: 40},
	{Description: "Curatati duzele", Frequency: 160},
	{Description: "Verificati presinea aerului", Frequency: 24},
	{Description: "Indepartati reziduurile de pe unitatile pneumatice", Frequency: 40},
	{Description: "Goliti apa din rezervor", Frequency: 160},
	{Description: "Inlocuiti filtrul de aer", Frequency: 480},
	{Description: "Indepartati reziduurile la sistemul de pozitionare a blocului de valve", Frequency: 160},
	{Description: "Efectuati o inspectie vizuala la sistemul de pozitionare a blocului de valve", Frequency: 480},
	{Description: "Masurati viteza benzii", Frequency: 160},
	{Description: "Calibrare VIS", Frequency: 480},
	{Description: "Calibrare NIR", Frequency: 960},
	{Description: "Calibrare DLA", Frequency: 960},
	{Description: "Calibrare EM", Frequency: 480},
}
