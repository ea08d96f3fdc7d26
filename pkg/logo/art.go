package logo

const asciiAMD = `$C2          '###############
$C2             ,#############
$C2                      .####
$C2              #.      .####
$C2            :##.      .####
$C2           :###.      .####
$C2           #########.   :##
$C2           #######.       ;
$C1
$C1    ###     ###      ###   #######
$C1   ## ##    #####  #####   ##     ##
$C1  ##   ##   ### #### ###   ##      ##
$C1 #########  ###  ##  ###   ##      ##
$C1##       ## ###      ###   ##     ##
$C1##       ## ###      ###   #######
`

const asciiIntel = `$C1  MMM                 oddl                   MMN
$C1  MMM                 dMMN                   MMN
$C1  ...  ....   ...     dMMM..      .cc.       NMN
$C1  MMM  :MMMdWMMMMMX.  dMMMMM,  .XMMMMMMNo    MMN
$C1  MMM  :MMMp    dMMM  dMMX   .NMW      WMN.  MMN
$C1  MMM  :MMM      WMM  dMMK   kMMXooooooNMMx  MMN
$C1  MMM  :MMM      NMM  dMMK   dMMX            MMN
$C1  MMM  :MMM      NMM  dMMMoo  OMM0....:Nx.   MMN
$C1  MMM  :WWW      XWW   lONMM   'xXMMMMNOc    MMN
`

const asciiARM = `$C1   #####  ##   # #####  ## ####  ######
$C1 ###    ####   ###      ####  ###   ###
$C1###       ##   ###      ###    ##    ###
$C1 ###    ####   ###      ###    ##    ###
$C1  ######  ##   ###      ###    ##    ###
`

const asciiNVIDIA = `$C1               'cccccccccccccccccccccccccc
$C1               ;oooooooooooooooooooooooool
$C1           .:::.     .oooooooooooooooooool
$C1      .:cll;   ,c:::.     cooooooooooooool
$C1   ,clo'      ;.   oolc:     ooooooooooool
$C1.cloo    ;cclo .      .olc.    coooooooool
oooo   :lo,    ;ll;    looc    :oooooooool
 oooc   ool.   ;oooc;clol    :looooooooool
  :ooc   ,ol;  ;oooooo.   .cloo;     loool
    ool;   .olc.       ,:lool        .lool
      ool:.    ,::::ccloo.        :clooool
         oolc::.            ':cclooooooool
               ;oooooooooooooooooooooooool

$C2######.  ##   ##  ##  ######   ##    ###
$C2##   ##  ##   ##  ##  ##   ##  ##   #: :#
$C2##   ##   ## ##   ##  ##   ##  ##  #######
$C2##   ##    ###    ##  ######   ## ##     ##
`

const asciiPowerPC = `$C1     //////                                   //////    /////
$C1    //// /// ,//// /// ///  /// /////  ///// /// ////////
$C1   */////// /// ///////////// /// /// ///// ////////////
$C1   ///     /// /// ///////// ///     ///   ///        ////.
$C1  ///      /////   //  ///     //// ///   ///          /////
`

const asciiApple = `$C1                    'c.
$C2                 ,xNMM.
$C3               .OMMMMo
$C4               OMMM0,
$C5     .;loddo:' loolloddol;.
$C6   cKMMMMMMMMMMNWMMMMMMMMMM0:
$C7 .KMMMMMMMMMMMMMMMMMMMMMMMWd.
$C1 XMMMMMMMMMMMMMMMMMMMMMMMX.
$C2;MMMMMMMMMMMMMMMMMMMMMMMM:
$C3:MMMMMMMMMMMMMMMMMMMMMMMM:
$C4.MMMMMMMMMMMMMMMMMMMMMMMMX.
$C5 kMMMMMMMMMMMMMMMMMMMMMMMMWd.
$C6 .XMMMMMMMMMMMMMMMMMMMMMMMMMMk
$C7  .XMMMMMMMMMMMMMMMMMMMMMMMMK.
$C1    kMMMMMMMMMMMMMMMMMMMMMMd
$C2     ;KMMMMMMMWXXWMMMMMMMk.
$C3       .cooc,.    .,coo:.
`
